package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unilink.id/campusclubs/internal/dto"
	"unilink.id/campusclubs/internal/middleware"
	"unilink.id/campusclubs/internal/service"
	"unilink.id/campusclubs/pkg/response"
	"unilink.id/campusclubs/pkg/validator"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	auth, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "User registered successfully",
		"user":       auth.User,
		"token":      auth.Token,
		"expires_at": auth.ExpiresAt,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	auth, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":       auth.User,
		"token":      auth.Token,
		"expires_at": auth.ExpiresAt,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
