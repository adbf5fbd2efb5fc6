package handlers

import (
	userRepoPkg "venuehub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	RevokeTokenHandler      gin.HandlerFunc

	// Space endpoints
	ListSpacesHandler      gin.HandlerFunc
	GetSpaceHandler        gin.HandlerFunc
	CreateSpaceHandler     gin.HandlerFunc
	UpdateSpaceHandler     gin.HandlerFunc
	DeleteSpaceHandler     gin.HandlerFunc
	SetAvailabilityHandler gin.HandlerFunc
	MySpacesHandler        gin.HandlerFunc

	// Booking endpoints
	QuoteBookingHandler   gin.HandlerFunc
	SubmitBookingHandler  gin.HandlerFunc
	CreateCheckoutHandler gin.HandlerFunc
	MyBookingsHandler     gin.HandlerFunc
	SpaceBookingsHandler  gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc

	// Payment endpoints
	StripeWebhookHandler    gin.HandlerFunc
	SaveStripeConfigHandler gin.HandlerFunc
	GetStripeConfigHandler  gin.HandlerFunc
}
