package payment

import (
	"errors"
	"time"

	"venuehub/models"
)

// Errors surfaced to handlers.
var (
	ErrBadSignature  = errors.New("webhook signature verification failed")
	ErrNotConfigured = errors.New("payment gateway is not configured")
	ErrInvalidConfig = errors.New("invalid payment gateway configuration")
)

// Gateway creates hosted checkout sessions and validates API keys against
// the payment processor.
type Gateway interface {
	CreateCheckoutSession(booking *models.Booking, space *models.Space) (url string, sessionID string, err error)
	ValidateKey(apiKey string) error
}

// SaveConfigInput is the admin-supplied credentials payload.
type SaveConfigInput struct {
	TestAPIKey    string `json:"testApiKey"`
	ProdAPIKey    string `json:"prodApiKey,omitempty"`
	Mode          string `json:"mode"`
	WebhookSecret string `json:"webhookSecret,omitempty"`
}

// CredentialsService manages the admin-owned gateway credentials.
type CredentialsService interface {
	Save(input SaveConfigInput) (*models.PaymentConfig, error)
	GetMasked() (*models.PaymentConfig, error)
}

// RecheckScheduler schedules the delayed re-apply of a webhook update.
type RecheckScheduler interface {
	ScheduleRecheck(payload models.ReconcilePayload, delay time.Duration) error
}

// ReconcileService consumes gateway webhook events and keeps booking
// payment state consistent with what the gateway reports.
type ReconcileService interface {
	HandleEvent(payload []byte, sigHeader string) error
	Reapply(p models.ReconcilePayload) error
	Sweep() error
}
