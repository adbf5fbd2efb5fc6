package payment

import (
	"fmt"
	"strings"

	paymentConfigRepo "venuehub/database/repository/paymentconfig"
	"venuehub/models"

	"go.uber.org/zap"
)

// DefaultCredentialsService validates and stores the Stripe credentials an
// admin manages through the dashboard.
type DefaultCredentialsService struct {
	Repo    paymentConfigRepo.PaymentConfigRepository
	Gateway Gateway
	Logger  *zap.Logger
}

// Save validates key prefixes, round-trips the active key against Stripe and
// persists the configuration. Omitted optional fields keep their stored
// values.
func (s *DefaultCredentialsService) Save(input SaveConfigInput) (*models.PaymentConfig, error) {
	if input.Mode != models.GatewayModeTest && input.Mode != models.GatewayModeProduction {
		return nil, fmt.Errorf("%w: mode must be %q or %q", ErrInvalidConfig,
			models.GatewayModeTest, models.GatewayModeProduction)
	}
	if input.TestAPIKey == "" {
		return nil, fmt.Errorf("%w: test API key is required", ErrInvalidConfig)
	}
	if !strings.HasPrefix(input.TestAPIKey, "sk_test_") {
		return nil, fmt.Errorf("%w: test API key must start with sk_test_", ErrInvalidConfig)
	}
	if input.ProdAPIKey != "" && !strings.HasPrefix(input.ProdAPIKey, "sk_live_") {
		return nil, fmt.Errorf("%w: production API key must start with sk_live_", ErrInvalidConfig)
	}
	if input.Mode == models.GatewayModeProduction && input.ProdAPIKey == "" {
		return nil, fmt.Errorf("%w: production mode requires a production API key", ErrInvalidConfig)
	}

	existing, err := s.Repo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load existing payment config: %w", err)
	}

	cfg := models.PaymentConfig{
		Mode:       input.Mode,
		TestAPIKey: input.TestAPIKey,
		ProdAPIKey: input.ProdAPIKey,
	}
	if cfg.ProdAPIKey == "" && existing != nil {
		cfg.ProdAPIKey = existing.ProdAPIKey
	}
	cfg.WebhookSecret = input.WebhookSecret
	if cfg.WebhookSecret == "" && existing != nil {
		cfg.WebhookSecret = existing.WebhookSecret
	}

	// Confirm the key actually works before persisting it.
	if err := s.Gateway.ValidateKey(cfg.ActiveKey()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := s.Repo.Upsert(&cfg); err != nil {
		return nil, err
	}
	s.Logger.Info("payment config saved", zap.String("mode", cfg.Mode))

	return masked(&cfg), nil
}

// GetMasked returns the stored configuration with key material redacted.
func (s *DefaultCredentialsService) GetMasked() (*models.PaymentConfig, error) {
	cfg, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	return masked(cfg), nil
}

func masked(cfg *models.PaymentConfig) *models.PaymentConfig {
	out := *cfg
	out.TestAPIKey = maskKey(cfg.TestAPIKey)
	out.ProdAPIKey = maskKey(cfg.ProdAPIKey)
	out.WebhookSecret = maskKey(cfg.WebhookSecret)
	return &out
}

// maskKey keeps the prefix and last four characters of a secret.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return "****"
	}
	return key[:8] + "..." + key[len(key)-4:]
}
