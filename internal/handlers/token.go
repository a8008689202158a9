package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eqb/projects-api/internal/dto"
	apierrors "github.com/eqb/projects-api/internal/errors"
	"github.com/eqb/projects-api/internal/middleware"
	"github.com/eqb/projects-api/internal/services"
)

// TokenHandler issues and revokes bearer tokens.
type TokenHandler struct {
	userService *services.UserService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(userService *services.UserService) *TokenHandler {
	return &TokenHandler{
		userService: userService,
	}
}

// IssueToken answers a basic-authenticated request with a bearer token.
// While the stored token stays valid beyond the reuse window it is returned
// unchanged; otherwise a fresh one is minted.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	token, err := h.userService.CurrentOrNewToken(user)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, dto.TokenDTO{Token: token})
}

// RevokeToken expires the caller's current token.
func (h *TokenHandler) RevokeToken(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.userService.RevokeToken(user); err != nil {
		apierrors.InternalError(c, "Failed to revoke token")
		return
	}

	c.Status(http.StatusNoContent)
}
