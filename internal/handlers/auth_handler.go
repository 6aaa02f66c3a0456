package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/dto"
	apperrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/middleware"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/services"
)

// AuthHandler handles login and current-user endpoints
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			apperrors.RespondWithError(c, http.StatusUnauthorized,
				apperrors.NewAPIError(apperrors.ErrCodeInvalidCredentials, "Invalid username or password"))
		case errors.Is(err, services.ErrAuthUnavailable):
			apperrors.ServiceUnavailable(c, "")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		Role:        result.Role,
		EmployeeID:  result.EmployeeID,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	user, err := h.service.GetUser(username)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apperrors.Unauthorized(c, "")
			return
		}
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		Username:   user.Username,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	})
}
