package handlers

import (
	"errors"
	"net/http"

	"venuehub/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SaveStripeConfigHandler stores gateway credentials after validating them
// against the processor. Admin only.
func SaveStripeConfigHandler(svc payment.CredentialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var input payment.SaveConfigInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		cfg, err := svc.Save(input)
		if err != nil {
			if errors.Is(err, payment.ErrInvalidConfig) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to save gateway config", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gateway config"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// GetStripeConfigHandler returns the stored credentials with the key
// material masked. Admin only.
func GetStripeConfigHandler(svc payment.CredentialsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		cfg, err := svc.GetMasked()
		if err != nil {
			logger.Error("Failed to fetch gateway config", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gateway config"})
			return
		}
		if cfg == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gateway is not configured"})
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}
