package middleware

import (
	"net/http"
	"strings"

	userRepo "venuehub/database/repository/user"
	"venuehub/models"
	"venuehub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID = "userID"
	CtxUser   = "authUser"
)

// JWTAuthUserMiddleware validates the bearer token, checks it against the
// stored token hash and attaches the authenticated user to the context. The
// identity travels explicitly with the request from here on; nothing
// downstream reads ambient auth state.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The stored hash ties the token to its user and allows revocation.
		computedHash := utils.HashToken(tokenString)
		u, err := users.GetByTokenHash(computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set(CtxUserID, u.ID)
		c.Set(CtxUser, u)
		c.Next()
	}
}

// AuthenticatedUser retrieves the user attached by JWTAuthUserMiddleware.
func AuthenticatedUser(c *gin.Context) *models.User {
	val, exists := c.Get(CtxUser)
	if !exists {
		return nil
	}
	u, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return u
}
