package bookingRepo

import "venuehub/models"

// PaymentOutcome captures the fields the reconciliation handler writes onto
// a booking when the gateway reports a payment result.
type PaymentOutcome struct {
	PaymentStatus string
	Status        string
	PaymentMethod string
	PaymentRef    string
}

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByPaymentRef(ref string) (*models.Booking, error)
	GetByClient(clientID string) ([]models.Booking, error)
	GetBySpace(spaceID string) ([]models.Booking, error)
	ConfirmedDates(spaceID string) (map[string]struct{}, error)
	UpdateStatus(id string, status string) error
	SetCheckout(id string, checkoutID string) error
	ApplyPaymentOutcome(id string, outcome PaymentOutcome) error
	FindPaidUnconfirmed() ([]models.Booking, error)
}
