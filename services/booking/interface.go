package booking

import "venuehub/models"

// BookingService drives the booking lifecycle: quoting, submission,
// listing and cancellation. Payment reconciliation lives in the payment
// service; this service never flips a booking to confirmed itself.
type BookingService interface {
	Quote(draft models.BookingDraft) (*models.BookingQuote, error)
	SubmitBooking(client *models.User, draft models.BookingDraft) (*models.BookingReceipt, error)
	GetClientBookings(clientID string) ([]models.Booking, error)
	GetSpaceBookings(requester *models.User, spaceID string) ([]models.Booking, error)
	GetBooking(requester *models.User, bookingID string) (*models.Booking, error)
	Cancel(requester *models.User, bookingID string) error
}
