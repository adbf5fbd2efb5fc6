package payment

import (
	"fmt"

	"venuehub/config"
	paymentConfigRepo "venuehub/database/repository/paymentconfig"
	"venuehub/models"
	"venuehub/services/booking"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway implements Gateway against Stripe. The API key is resolved
// per call from the admin-managed stored config so a credential change takes
// effect without a restart; environment keys act as a bootstrap fallback.
type StripeGateway struct {
	Config paymentConfigRepo.PaymentConfigRepository
}

func (g *StripeGateway) activeKey() (string, error) {
	if g.Config != nil {
		cfg, err := g.Config.Get()
		if err != nil {
			return "", fmt.Errorf("failed to load payment config: %w", err)
		}
		if cfg != nil && cfg.ActiveKey() != "" {
			return cfg.ActiveKey(), nil
		}
	}

	// Fallback to environment-provided keys.
	if config.AppConfig.StripeMode == models.GatewayModeProduction && config.AppConfig.StripeLiveKey != "" {
		return config.AppConfig.StripeLiveKey, nil
	}
	if config.AppConfig.StripeTestKey != "" {
		return config.AppConfig.StripeTestKey, nil
	}
	return "", ErrNotConfigured
}

func apiClient(key string) *client.API {
	sc := &client.API{}
	sc.Init(key, nil)
	return sc
}

// CreateCheckoutSession asks Stripe for a hosted payment page covering the
// booking total. The booking id travels as opaque metadata so the webhook
// can correlate the outcome back to the record.
func (g *StripeGateway) CreateCheckoutSession(b *models.Booking, space *models.Space) (string, string, error) {
	key, err := g.activeKey()
	if err != nil {
		return "", "", err
	}
	sc := apiClient(key)

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:         stripe.String(config.AppConfig.CheckoutCancelURL),
		ClientReferenceID: stripe.String(b.ID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(config.AppConfig.CheckoutCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(space.Title),
					},
					UnitAmount: stripe.Int64(booking.ToMinorUnits(b.TotalPrice)),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("booking_id", b.ID)
	params.AddMetadata("space_id", space.ID)

	sess, err := sc.CheckoutSessions.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, sess.ID, nil
}

// ValidateKey performs a live round-trip against Stripe to confirm the key
// is usable before it is persisted.
func (g *StripeGateway) ValidateKey(apiKey string) error {
	sc := apiClient(apiKey)
	if _, err := sc.Balance.Get(&stripe.BalanceParams{}); err != nil {
		return fmt.Errorf("stripe rejected the API key: %w", err)
	}
	return nil
}
