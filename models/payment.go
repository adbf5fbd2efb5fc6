package models

import "time"

// Gateway modes for the stored Stripe credentials.
const (
	GatewayModeTest       = "test"
	GatewayModeProduction = "production"
)

// PaymentConfig holds the admin-managed Stripe credentials, keyed by mode.
type PaymentConfig struct {
	Mode          string    `bson:"mode" json:"mode"` // "test" or "production"
	TestAPIKey    string    `bson:"test_api_key,omitempty" json:"test_api_key,omitempty"`
	ProdAPIKey    string    `bson:"prod_api_key,omitempty" json:"prod_api_key,omitempty"`
	WebhookSecret string    `bson:"webhook_secret,omitempty" json:"webhook_secret,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ActiveKey returns the API key matching the configured mode.
func (c *PaymentConfig) ActiveKey() string {
	if c.Mode == GatewayModeProduction {
		return c.ProdAPIKey
	}
	return c.TestAPIKey
}

// CheckoutSession is the hosted-payment-page handoff returned to the client.
type CheckoutSession struct {
	URL string `json:"url"`
}

// ReconcilePayload is the asynq task payload for the delayed webhook
// re-apply and the periodic paid-but-unconfirmed sweep.
type ReconcilePayload struct {
	BookingID     string `json:"bookingId,omitempty"` // empty for a sweep
	PaymentStatus string `json:"paymentStatus,omitempty"`
	Status        string `json:"status,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	PaymentRef    string `json:"paymentRef,omitempty"`
}
