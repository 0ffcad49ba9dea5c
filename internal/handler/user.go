package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kisan-backend/internal/auth"
	"kisan-backend/internal/models"
	"kisan-backend/internal/repository"
	"kisan-backend/internal/users"
)

type UserHandler interface {
	Register(c *gin.Context)
	Me(c *gin.Context)
	UpdateMe(c *gin.Context)
}

type userHandler struct {
	users  *users.Service
	issuer *auth.Issuer
	logger *zap.Logger
}

func NewUserHandler(userService *users.Service, issuer *auth.Issuer, logger *zap.Logger) UserHandler {
	return &userHandler{users: userService, issuer: issuer, logger: logger}
}

type RegisterResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Register handles POST /api/v1/users
func (h *userHandler) Register(c *gin.Context) {
	var req models.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	token, expiresAt, err := h.issuer.Issue(user.ID, user.Language)
	if err != nil {
		h.logger.Error("Failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{User: user, Token: token, ExpiresAt: expiresAt})
}

// Me handles GET /api/v1/users/me
func (h *userHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /api/v1/users/me
func (h *userHandler) UpdateMe(c *gin.Context) {
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.userError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *userHandler) userError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	h.logger.Error("User lookup failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
