package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly/booking-backend/internal/auth"
	"github.com/roomly/booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user carries the admin role.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if auth.GetUserRole(c) != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
