package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/habitquest/habit-tree-api/internal/constants"
	apierrors "github.com/habitquest/habit-tree-api/internal/errors"
	"github.com/habitquest/habit-tree-api/internal/utils"
)

// RequireAuth checks the Authorization header for a valid bearer token and
// stores the decoded identity in the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			apierrors.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		userID, email, err := utils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserEmail, email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetUserEmail retrieves the current user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(constants.ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	v, ok := email.(string)
	return v, ok
}
