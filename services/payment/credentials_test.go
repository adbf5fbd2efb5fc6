package payment

import (
	"errors"
	"testing"

	"venuehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCheckoutSession(booking *models.Booking, space *models.Space) (string, string, error) {
	args := m.Called(booking, space)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockGateway) ValidateKey(apiKey string) error {
	args := m.Called(apiKey)
	return args.Error(0)
}

func newCredentialsService(repo *MockConfigRepository, gw *MockGateway) *DefaultCredentialsService {
	return &DefaultCredentialsService{
		Repo:    repo,
		Gateway: gw,
		Logger:  zap.NewNop(),
	}
}

func TestSaveConfig_Success(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockGateway := new(MockGateway)

	mockRepo.On("Get").Return(nil, nil)
	mockGateway.On("ValidateKey", "sk_test_abcdef123456").Return(nil)

	var saved *models.PaymentConfig
	mockRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.PaymentConfig)
	}).Return(nil)

	svc := newCredentialsService(mockRepo, mockGateway)

	cfg, err := svc.Save(SaveConfigInput{
		Mode:          models.GatewayModeTest,
		TestAPIKey:    "sk_test_abcdef123456",
		WebhookSecret: "whsec_abcdef123456",
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, "sk_test_abcdef123456", saved.TestAPIKey)
	assert.Equal(t, models.GatewayModeTest, saved.Mode)

	// The returned view is masked.
	assert.Equal(t, "sk_test_...3456", cfg.TestAPIKey)
	assert.Equal(t, "whsec_ab...3456", cfg.WebhookSecret)
}

func TestSaveConfig_InvalidMode(t *testing.T) {
	svc := newCredentialsService(new(MockConfigRepository), new(MockGateway))

	_, err := svc.Save(SaveConfigInput{Mode: "sandbox", TestAPIKey: "sk_test_x"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveConfig_KeyPrefixValidation(t *testing.T) {
	svc := newCredentialsService(new(MockConfigRepository), new(MockGateway))

	_, err := svc.Save(SaveConfigInput{Mode: models.GatewayModeTest})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = svc.Save(SaveConfigInput{Mode: models.GatewayModeTest, TestAPIKey: "sk_live_wrong"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = svc.Save(SaveConfigInput{
		Mode:       models.GatewayModeTest,
		TestAPIKey: "sk_test_ok",
		ProdAPIKey: "sk_test_wrong_prefix",
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveConfig_ProductionRequiresProdKey(t *testing.T) {
	svc := newCredentialsService(new(MockConfigRepository), new(MockGateway))

	_, err := svc.Save(SaveConfigInput{
		Mode:       models.GatewayModeProduction,
		TestAPIKey: "sk_test_ok",
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveConfig_MergesOmittedFieldsFromStored(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockGateway := new(MockGateway)

	mockRepo.On("Get").Return(&models.PaymentConfig{
		Mode:          models.GatewayModeTest,
		TestAPIKey:    "sk_test_old",
		ProdAPIKey:    "sk_live_kept1234567890",
		WebhookSecret: "whsec_kept1234567890",
	}, nil)
	mockGateway.On("ValidateKey", mock.Anything).Return(nil)

	var saved *models.PaymentConfig
	mockRepo.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.PaymentConfig)
	}).Return(nil)

	svc := newCredentialsService(mockRepo, mockGateway)

	_, err := svc.Save(SaveConfigInput{
		Mode:       models.GatewayModeTest,
		TestAPIKey: "sk_test_new1234567890",
	})

	assert.NoError(t, err)
	assert.Equal(t, "sk_test_new1234567890", saved.TestAPIKey)
	assert.Equal(t, "sk_live_kept1234567890", saved.ProdAPIKey)
	assert.Equal(t, "whsec_kept1234567890", saved.WebhookSecret)
}

func TestSaveConfig_RejectedKeyIsNotPersisted(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockGateway := new(MockGateway)

	mockRepo.On("Get").Return(nil, nil)
	mockGateway.On("ValidateKey", "sk_test_revoked").Return(errors.New("Invalid API Key provided"))

	svc := newCredentialsService(mockRepo, mockGateway)

	_, err := svc.Save(SaveConfigInput{
		Mode:       models.GatewayModeTest,
		TestAPIKey: "sk_test_revoked",
	})

	assert.ErrorIs(t, err, ErrInvalidConfig)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestSaveConfig_ProductionModeValidatesLiveKey(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockGateway := new(MockGateway)

	mockRepo.On("Get").Return(nil, nil)
	mockGateway.On("ValidateKey", "sk_live_abcdef123456").Return(nil)
	mockRepo.On("Upsert", mock.Anything).Return(nil)

	svc := newCredentialsService(mockRepo, mockGateway)

	_, err := svc.Save(SaveConfigInput{
		Mode:       models.GatewayModeProduction,
		TestAPIKey: "sk_test_abcdef123456",
		ProdAPIKey: "sk_live_abcdef123456",
	})

	assert.NoError(t, err)
	// The active key in production mode is the live key.
	mockGateway.AssertCalled(t, "ValidateKey", "sk_live_abcdef123456")
}

func TestGetMasked(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockRepo.On("Get").Return(&models.PaymentConfig{
		Mode:       models.GatewayModeTest,
		TestAPIKey: "sk_test_abcdef123456",
		ProdAPIKey: "short",
	}, nil)

	svc := newCredentialsService(mockRepo, new(MockGateway))

	cfg, err := svc.GetMasked()
	assert.NoError(t, err)
	assert.Equal(t, "sk_test_...3456", cfg.TestAPIKey)
	assert.Equal(t, "****", cfg.ProdAPIKey)
}

func TestGetMasked_NotConfigured(t *testing.T) {
	mockRepo := new(MockConfigRepository)
	mockRepo.On("Get").Return(nil, nil)

	svc := newCredentialsService(mockRepo, new(MockGateway))

	cfg, err := svc.GetMasked()
	assert.NoError(t, err)
	assert.Nil(t, cfg)
}
