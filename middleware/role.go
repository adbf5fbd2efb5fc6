package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group behind a platform role. It runs after
// JWTAuthUserMiddleware and checks the authenticated user's stored roles;
// there is no static admin token.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := AuthenticatedUser(c)
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !u.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}
