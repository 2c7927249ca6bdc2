package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/password"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles account registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, response.DuplicateEntry("Email is already registered"))
			return
		}
		// The binding max counts runes; multibyte passwords can still
		// exceed bcrypt's byte limit and that is the client's fault,
		// not a server error
		if errors.Is(err, password.ErrPasswordTooLong) {
			c.JSON(http.StatusBadRequest, response.BadRequest("Password is too long"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}
