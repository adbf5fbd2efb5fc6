package paymentConfigRepo

import "venuehub/models"

// PaymentConfigRepository stores the admin-managed gateway credentials.
type PaymentConfigRepository interface {
	Upsert(cfg *models.PaymentConfig) error
	Get() (*models.PaymentConfig, error)
}
