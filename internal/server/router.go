package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eqb/projects-api/internal/docs"
	"github.com/eqb/projects-api/internal/handlers"
	"github.com/eqb/projects-api/internal/middleware"
	"github.com/eqb/projects-api/internal/repository"
	"github.com/eqb/projects-api/internal/services"
)

// NewRouter wires repositories, services, handlers and auth middleware into
// a gin engine. Shared by the serve command and the handler tests.
func NewRouter(db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	tokenHandler := handlers.NewTokenHandler(userService)

	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Projects API is running",
		})
	})

	r.GET("/openapi.json", func(c *gin.Context) {
		c.JSON(200, docs.Spec())
	})

	// API routes
	api := r.Group("/api")
	{
		// Token issuance uses basic credentials, everything else a bearer
		// token.
		api.POST("/tokens", middleware.RequireBasicAuth(userService), tokenHandler.IssueToken)
		api.DELETE("/tokens", middleware.RequireTokenAuth(userService), tokenHandler.RevokeToken)

		authed := api.Group("")
		authed.Use(middleware.RequireTokenAuth(userService))
		{
			projects := authed.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.GET("/:id", projectHandler.GetProject)
				projects.POST("", middleware.RequireManager(), projectHandler.CreateProject)
				projects.PUT("/:id", middleware.RequireManager(), projectHandler.UpdateProject)
				projects.DELETE("/:id", middleware.RequireManager(), projectHandler.DeleteProject)

				projects.GET("/:id/tasks", taskHandler.ListTasks)
				projects.POST("/:id/tasks", middleware.RequireManager(), taskHandler.CreateTask)
				projects.PUT("/:id/tasks/:task_id", middleware.RequireManager(), taskHandler.UpdateTaskStatus)
				projects.DELETE("/:id/tasks/:task_id", middleware.RequireManager(), taskHandler.DeleteTask)
			}

			users := authed.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUser)
				users.GET("/user-by-username/:username", userHandler.GetUserByUsername)
				users.POST("", middleware.RequireManager(), userHandler.CreateUser)
				users.PATCH("/promote/:username", middleware.RequireManager(), userHandler.PromoteToManager)
				users.DELETE("/:id", middleware.RequireManager(), userHandler.DeleteUser)
			}
		}
	}

	return r
}
