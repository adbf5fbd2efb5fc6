package handlers

import (
	"errors"
	"net/http"

	"venuehub/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StripeWebhookHandler receives gateway events. Signature failures return
// 400 with no state change; events the service does not care about are
// acknowledged so the gateway stops retrying them.
func StripeWebhookHandler(svc payment.ReconcileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		payload, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
			return
		}

		if err := svc.HandleEvent(payload, c.GetHeader("Stripe-Signature")); err != nil {
			if errors.Is(err, payment.ErrBadSignature) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
				return
			}
			logger.Error("Failed to process webhook event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
