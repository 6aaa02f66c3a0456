package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/constants"
	apierrors "github.com/Rakshita16-hub/Cronberry-Asset-management/internal/errors"
	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/utils"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(jwtSecret, tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUsername, claims.Subject)
		c.Set(constants.ContextKeyRole, claims.Role)
		if claims.EmployeeID != nil {
			c.Set(constants.ContextKeyEmployeeID, *claims.EmployeeID)
		}
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Insufficient role")
		c.Abort()
	}
}

// GetUsername retrieves the authenticated username from context
func GetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// GetRole retrieves the authenticated user's role from context
func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(constants.ContextKeyRole)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// GetEmployeeID retrieves the linked employee ID for Employee-role callers
func GetEmployeeID(c *gin.Context) (string, bool) {
	v, exists := c.Get(constants.ContextKeyEmployeeID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
