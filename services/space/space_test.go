package space

import (
	"testing"

	"venuehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) Create(space *models.Space) error {
	args := m.Called(space)
	return args.Error(0)
}

func (m *MockSpaceRepository) Update(space *models.Space) error {
	args := m.Called(space)
	return args.Error(0)
}

func (m *MockSpaceRepository) UpdateSetDocument(id string, updateDoc bson.M) error {
	args := m.Called(id, updateDoc)
	return args.Error(0)
}

func (m *MockSpaceRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSpaceRepository) GetByID(id string) (*models.Space, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetAll() ([]models.Space, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetByHost(hostID string) ([]models.Space, error) {
	args := m.Called(hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Space), args.Error(1)
}

func (m *MockSpaceRepository) SetAvailableDates(id string, dates []string) error {
	args := m.Called(id, dates)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(u *models.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByTokenHash(hash string) (*models.User, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SetTokenHash(id string, hash string) error {
	args := m.Called(id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) AddRole(id string, role string) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func validSpace() models.Space {
	return models.Space{
		Title:       "Garden Pavilion",
		Capacity:    40,
		PricingMode: models.PricingModeDaily,
		DailyPrice:  800,
		Amenities: []models.Amenity{
			{Name: "sound system", Price: 120},
		},
		AvailableDates: []string{"2026-06-02", "2026-06-01"},
	}
}

func newService(repo *MockSpaceRepository, users *MockUserRepository) *DefaultSpaceService {
	return &DefaultSpaceService{Repo: repo, Users: users, Logger: zap.NewNop()}
}

func TestCreate_AssignsIDAndGrantsHostRole(t *testing.T) {
	mockRepo := new(MockSpaceRepository)
	mockUsers := new(MockUserRepository)

	var created *models.Space
	mockRepo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Space)
	}).Return(nil)
	mockUsers.On("AddRole", "u1", models.RoleHost).Return(nil)

	svc := newService(mockRepo, mockUsers)
	host := &models.User{ID: "u1", Roles: []string{models.RoleClient}}

	sp, err := svc.Create(host, validSpace())

	assert.NoError(t, err)
	assert.NotEmpty(t, sp.ID)
	assert.Equal(t, "u1", sp.HostID)
	// Dates are normalized to sorted order.
	assert.Equal(t, []string{"2026-06-01", "2026-06-02"}, created.AvailableDates)
	mockUsers.AssertCalled(t, "AddRole", "u1", models.RoleHost)
}

func TestCreate_ExistingHostKeepsRole(t *testing.T) {
	mockRepo := new(MockSpaceRepository)
	mockUsers := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything).Return(nil)

	svc := newService(mockRepo, mockUsers)
	host := &models.User{ID: "u1", Roles: []string{models.RoleClient, models.RoleHost}}

	_, err := svc.Create(host, validSpace())

	assert.NoError(t, err)
	mockUsers.AssertNotCalled(t, "AddRole", mock.Anything, mock.Anything)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService(new(MockSpaceRepository), new(MockUserRepository))
	host := &models.User{ID: "u1"}

	s := validSpace()
	s.Title = "  "
	_, err := svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)

	s = validSpace()
	s.Capacity = 0
	_, err = svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)

	s = validSpace()
	s.DailyPrice = 0
	_, err = svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)

	s = validSpace()
	s.Amenities = []models.Amenity{{Name: "tv", Price: -5}}
	_, err = svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)

	s = validSpace()
	s.AvailableDates = []string{"June 1st"}
	_, err = svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)

	s = validSpace()
	s.PricingMode = "weekly"
	_, err = svc.Create(host, s)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	existing := validSpace()
	existing.ID = "sp_1"
	existing.HostID = "u1"

	mockRepo := new(MockSpaceRepository)
	mockRepo.On("GetByID", "sp_1").Return(&existing, nil)

	svc := newService(mockRepo, new(MockUserRepository))

	_, err := svc.Update(&models.User{ID: "intruder"}, "sp_1", validSpace())
	assert.ErrorIs(t, err, ErrNotOwner)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdate_PreservesIdentityFields(t *testing.T) {
	existing := validSpace()
	existing.ID = "sp_1"
	existing.HostID = "u1"

	mockRepo := new(MockSpaceRepository)
	mockRepo.On("GetByID", "sp_1").Return(&existing, nil)

	var updated *models.Space
	mockRepo.On("Update", mock.Anything).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*models.Space)
	}).Return(nil)

	svc := newService(mockRepo, new(MockUserRepository))

	input := validSpace()
	input.ID = "spoofed"
	input.HostID = "someone-else"
	input.Title = "Renovated Pavilion"

	sp, err := svc.Update(&models.User{ID: "u1"}, "sp_1", input)

	assert.NoError(t, err)
	assert.Equal(t, "sp_1", sp.ID)
	assert.Equal(t, "u1", sp.HostID)
	assert.Equal(t, "Renovated Pavilion", updated.Title)
}

func TestSetAvailability(t *testing.T) {
	existing := validSpace()
	existing.ID = "sp_1"
	existing.HostID = "u1"

	mockRepo := new(MockSpaceRepository)
	mockRepo.On("GetByID", "sp_1").Return(&existing, nil)
	mockRepo.On("SetAvailableDates", "sp_1", []string{"2026-07-01", "2026-07-02"}).Return(nil)

	svc := newService(mockRepo, new(MockUserRepository))

	err := svc.SetAvailability(&models.User{ID: "u1"}, "sp_1", []string{"2026-07-02", "2026-07-01"})
	assert.NoError(t, err)

	err = svc.SetAvailability(&models.User{ID: "u1"}, "sp_1", []string{"not-a-date"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGet_NotFound(t *testing.T) {
	mockRepo := new(MockSpaceRepository)
	mockRepo.On("GetByID", "missing").Return(nil, nil)

	svc := newService(mockRepo, new(MockUserRepository))

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	existing := validSpace()
	existing.ID = "sp_1"
	existing.HostID = "u1"

	mockRepo := new(MockSpaceRepository)
	mockRepo.On("GetByID", "sp_1").Return(&existing, nil)
	mockRepo.On("Delete", "sp_1").Return(nil)

	svc := newService(mockRepo, new(MockUserRepository))

	assert.ErrorIs(t, svc.Delete(&models.User{ID: "intruder"}, "sp_1"), ErrNotOwner)
	assert.NoError(t, svc.Delete(&models.User{ID: "u1"}, "sp_1"))
}
