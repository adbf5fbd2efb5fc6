package handlers

import (
	"errors"
	"net/http"

	bookingRepo "venuehub/database/repository/booking"
	"venuehub/middleware"
	"venuehub/models"
	bookingService "venuehub/services/booking"
	"venuehub/services/payment"
	spaceService "venuehub/services/space"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bookingErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, bookingService.ErrSpaceNotFound):
		return http.StatusNotFound, "Space not found"
	case errors.Is(err, bookingService.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, bookingService.ErrNotPermitted):
		return http.StatusForbidden, "Not permitted to act on this booking"
	case errors.Is(err, bookingService.ErrDateUnavailable):
		return http.StatusConflict, "Requested start date is not available"
	case errors.Is(err, bookingService.ErrAlreadyFinal):
		return http.StatusConflict, "Booking is already in a final state"
	case errors.Is(err, bookingService.ErrUnsupportedMode),
		errors.Is(err, bookingService.ErrInvalidDate),
		errors.Is(err, bookingService.ErrInvalidDuration),
		errors.Is(err, bookingService.ErrGuestCount),
		errors.Is(err, bookingService.ErrInvalidStartTime),
		errors.Is(err, bookingService.ErrTimeWindow):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// QuoteBookingHandler previews price and availability without persisting
// anything.
func QuoteBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var draft models.BookingDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		quote, err := svc.Quote(draft)
		if err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to compute quote", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}

// SubmitBookingHandler assembles and persists a pending booking for the
// authenticated client.
func SubmitBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		client := middleware.AuthenticatedUser(c)
		if client == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var draft models.BookingDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		receipt, err := svc.SubmitBooking(client, draft)
		if err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to submit booking", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, receipt)
	}
}

// CreateCheckoutHandler opens a hosted checkout session for a pending
// booking and records the session id on the booking.
func CreateCheckoutHandler(
	bookingSvc bookingService.BookingService,
	spaceSvc spaceService.SpaceService,
	gateway payment.Gateway,
	bookings bookingRepo.BookingRepository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		client := middleware.AuthenticatedUser(c)
		if client == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		b, err := bookingSvc.GetBooking(client, c.Param("id"))
		if err != nil {
			status, msg := bookingErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		if b.ClientID != client.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the booking client may pay for it"})
			return
		}
		if b.Status != models.BookingPending || b.PaymentStatus == models.PaymentPaid {
			c.JSON(http.StatusConflict, gin.H{"error": "Booking is not payable"})
			return
		}

		sp, err := spaceSvc.Get(b.SpaceID)
		if err != nil {
			status, msg := spaceErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}

		url, sessionID, err := gateway.CreateCheckoutSession(b, sp)
		if err != nil {
			if errors.Is(err, payment.ErrNotConfigured) {
				logger.Error("Checkout requested with no gateway configured")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment gateway is not configured"})
				return
			}
			logger.Error("Failed to create checkout session", zap.String("bookingID", b.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
			return
		}

		if err := bookings.SetCheckout(b.ID, sessionID); err != nil {
			logger.Error("Failed to record checkout session", zap.String("bookingID", b.ID), zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// MyBookingsHandler lists the authenticated client's bookings.
func MyBookingsHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		client := middleware.AuthenticatedUser(c)
		if client == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		list, err := svc.GetClientBookings(client.ID)
		if err != nil {
			logger.Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// SpaceBookingsHandler lists bookings against a space, for its host.
func SpaceBookingsHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		requester := middleware.AuthenticatedUser(c)
		if requester == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		list, err := svc.GetSpaceBookings(requester, c.Param("id"))
		if err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to list space bookings", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetBookingHandler returns one booking visible to the requester.
func GetBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := middleware.AuthenticatedUser(c)
		if requester == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		b, err := svc.GetBooking(requester, c.Param("id"))
		if err != nil {
			status, msg := bookingErrorStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler cancels a booking on behalf of its client or host.
func CancelBookingHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		requester := middleware.AuthenticatedUser(c)
		if requester == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.Cancel(requester, c.Param("id")); err != nil {
			status, msg := bookingErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to cancel booking", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}
