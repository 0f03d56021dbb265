// Package auth exposes registration and login endpoints.
package auth

import (
	"errors"
	"net/http"

	"nutrilens-api/internal/core/user"
	"nutrilens-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Handler serves the auth routes.
type Handler struct {
	users *user.Service
}

// NewHandler builds the auth handler.
func NewHandler(users *user.Service) *Handler {
	return &Handler{users: users}
}

// HandleRegister creates an account.
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	result, err := h.users.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleLogin verifies credentials and returns a token.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrInvalidRequest.Message})
		return
	}

	result, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondAuthError(c *gin.Context, err error, logMsg string) {
	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, gin.H{"error": custom.Message, "code": custom.Code})
		return
	}

	common.LogError(logMsg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.ErrInternalError.Message})
}
