// Package docs assembles the OpenAPI document served at /openapi.json.
package docs

import "github.com/gin-gonic/gin"

// Spec returns the OpenAPI 3 document for the API.
func Spec() gin.H {
	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":       "Projects API",
			"description": "Multi-tenant project/task tracker with token-based authentication.",
			"version":     "1.0.0",
		},
		"components": gin.H{
			"securitySchemes": gin.H{
				"basicAuth":  gin.H{"type": "http", "scheme": "basic"},
				"bearerAuth": gin.H{"type": "http", "scheme": "bearer"},
			},
			"schemas": gin.H{
				"Error": gin.H{
					"type": "object",
					"properties": gin.H{
						"code":    gin.H{"type": "string"},
						"message": gin.H{"type": "string"},
					},
				},
				"User": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":         gin.H{"type": "integer"},
						"username":   gin.H{"type": "string"},
						"email":      gin.H{"type": "string"},
						"is_manager": gin.H{"type": "boolean"},
					},
				},
				"Project": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":          gin.H{"type": "integer"},
						"name":        gin.H{"type": "string", "maxLength": 100},
						"description": gin.H{"type": "string", "maxLength": 255},
					},
				},
				"Task": gin.H{
					"type": "object",
					"properties": gin.H{
						"id":         gin.H{"type": "integer"},
						"project_id": gin.H{"type": "integer"},
						"name":       gin.H{"type": "string"},
						"status":     gin.H{"type": "string", "description": "Conventionally NEW, IN_PROGRESS or COMPLETED"},
					},
				},
				"Token": gin.H{
					"type": "object",
					"properties": gin.H{
						"token": gin.H{"type": "string"},
					},
				},
			},
		},
		"paths": gin.H{
			"/api/tokens": gin.H{
				"post": operation("Issue an authentication token", []string{"basicAuth"},
					responses{"200": jsonResponse("Token issued", "Token"), "401": errResponse("Invalid credentials")}),
				"delete": operation("Revoke the current token", []string{"bearerAuth"},
					responses{"204": plainResponse("Token revoked"), "401": errResponse("Invalid token")}),
			},
			"/api/projects": gin.H{
				"get": operation("List all projects", []string{"bearerAuth"},
					responses{"200": jsonResponse("Project list", "Project")}),
				"post": operation("Create a project (manager)", []string{"bearerAuth"},
					responses{"201": jsonResponse("Project created", "Project"), "400": errResponse("Missing name"), "403": errResponse("Manager role required")}),
			},
			"/api/projects/{id}": gin.H{
				"get": operation("Get a project", []string{"bearerAuth"},
					responses{"200": jsonResponse("Project", "Project"), "404": errResponse("Project not found")}),
				"put": operation("Update a project (manager)", []string{"bearerAuth"},
					responses{"200": jsonResponse("Project updated", "Project"), "404": errResponse("Project not found")}),
				"delete": operation("Delete a project and its tasks (manager)", []string{"bearerAuth"},
					responses{"204": plainResponse("Project deleted")}),
			},
			"/api/projects/{id}/tasks": gin.H{
				"get": operation("List tasks of a project", []string{"bearerAuth"},
					responses{"200": jsonResponse("Task list", "Task"), "404": errResponse("Project not found")}),
				"post": operation("Create a task (manager)", []string{"bearerAuth"},
					responses{"201": jsonResponse("Task created", "Task"), "404": errResponse("Project not found")}),
			},
			"/api/projects/{id}/tasks/{task_id}": gin.H{
				"put": operation("Update a task's status (manager)", []string{"bearerAuth"},
					responses{"200": jsonResponse("Task updated", "Task"), "404": errResponse("Task not found")}),
				"delete": operation("Delete a task (manager)", []string{"bearerAuth"},
					responses{"204": plainResponse("Task deleted"), "404": errResponse("Task not found")}),
			},
			"/api/users": gin.H{
				"get": operation("List all users", []string{"bearerAuth"},
					responses{"200": jsonResponse("User list", "User")}),
				"post": operation("Create a user (manager)", []string{"bearerAuth"},
					responses{"201": jsonResponse("User created", "User"), "400": errResponse("Duplicate username or e-mail")}),
			},
			"/api/users/{id}": gin.H{
				"get": operation("Get a user", []string{"bearerAuth"},
					responses{"200": jsonResponse("User", "User"), "404": errResponse("User not found")}),
				"delete": operation("Delete a user (manager)", []string{"bearerAuth"},
					responses{"204": plainResponse("User deleted"), "404": errResponse("User not found")}),
			},
			"/api/users/user-by-username/{username}": gin.H{
				"get": operation("Get a user by username", []string{"bearerAuth"},
					responses{"200": jsonResponse("User", "User"), "404": errResponse("User not found")}),
			},
			"/api/users/promote/{username}": gin.H{
				"patch": operation("Promote a user to manager (manager)", []string{"bearerAuth"},
					responses{"200": plainResponse("User promoted"), "404": errResponse("User not found")}),
			},
		},
	}
}

type responses map[string]gin.H

func operation(summary string, schemes []string, resp responses) gin.H {
	security := make([]gin.H, len(schemes))
	for i, scheme := range schemes {
		security[i] = gin.H{scheme: []string{}}
	}

	r := gin.H{}
	for code, body := range resp {
		r[code] = body
	}

	return gin.H{
		"summary":   summary,
		"security":  security,
		"responses": r,
	}
}

func jsonResponse(description, schema string) gin.H {
	return gin.H{
		"description": description,
		"content": gin.H{
			"application/json": gin.H{
				"schema": gin.H{"$ref": "#/components/schemas/" + schema},
			},
		},
	}
}

func errResponse(description string) gin.H {
	return jsonResponse(description, "Error")
}

func plainResponse(description string) gin.H {
	return gin.H{"description": description}
}
