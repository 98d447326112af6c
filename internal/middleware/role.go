package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleAdmin is the only role the menu backend issues; every admin-panel
// route requires it.
const RoleAdmin = "ADMIN"

// RequireRole allows the request through when the authenticated user's
// role matches one of allowed. Must run after AuthMiddleware, which puts
// the role on the context.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, want := range allowed {
			if role == want {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
