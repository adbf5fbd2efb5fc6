package handlers

import (
	"errors"
	"net/http"

	"venuehub/middleware"
	userService "venuehub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserHandler creates a new account and returns a bearer token.
func RegisterUserHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Register(req.Email, req.Name, req.Password)
		if err != nil {
			if errors.Is(err, userService.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
				return
			}
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateUserHandler verifies credentials and returns a bearer token.
func AuthenticateUserHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, userService.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			logger.Error("Failed to authenticate user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := middleware.AuthenticatedUser(c)
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// RevokeTokenHandler invalidates the caller's active bearer token.
func RevokeTokenHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		u := middleware.AuthenticatedUser(c)
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.RevokeToken(u.ID); err != nil {
			logger.Error("Failed to revoke token", zap.String("userID", u.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
	}
}
