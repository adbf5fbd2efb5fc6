package space

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	spaceRepo "venuehub/database/repository/space"
	userRepo "venuehub/database/repository/user"
	"venuehub/models"
	"venuehub/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSpaceNotFound = errors.New("space not found")
	ErrNotOwner      = errors.New("only the owning host may modify a space")
	ErrValidation    = errors.New("invalid space")
)

// DefaultSpaceService implements SpaceService.
type DefaultSpaceService struct {
	Repo   spaceRepo.SpaceRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// validate checks a space at the ingress boundary. Loose client rows are
// never trusted past this point: negative prices and malformed dates are
// rejected here, not downstream.
func validate(s *models.Space) error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if s.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}

	switch s.PricingMode {
	case models.PricingModeDaily:
		if s.DailyPrice <= 0 {
			return fmt.Errorf("%w: daily pricing requires a positive daily price", ErrValidation)
		}
	case models.PricingModeHourly:
		if s.HourlyPrice <= 0 {
			return fmt.Errorf("%w: hourly pricing requires a positive hourly price", ErrValidation)
		}
	case models.PricingModeBoth:
		if s.DailyPrice <= 0 || s.HourlyPrice <= 0 {
			return fmt.Errorf("%w: both pricing modes require positive prices", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: pricing mode must be daily, hourly or both", ErrValidation)
	}

	for _, a := range s.Amenities {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: amenity name is required", ErrValidation)
		}
		if a.Price < 0 {
			return fmt.Errorf("%w: amenity price cannot be negative", ErrValidation)
		}
	}

	for _, d := range s.AvailableDates {
		if _, err := time.Parse(booking.DayFormat, d); err != nil {
			return fmt.Errorf("%w: available date %q is not YYYY-MM-DD", ErrValidation, d)
		}
	}
	return nil
}

// Create lists a new space for a host, granting the host role on first use.
func (s *DefaultSpaceService) Create(host *models.User, input models.Space) (*models.Space, error) {
	if host == nil || host.ID == "" {
		return nil, ErrNotOwner
	}
	if err := validate(&input); err != nil {
		return nil, err
	}

	input.ID = uuid.New().String()
	input.HostID = host.ID
	sortDates(input.AvailableDates)

	if err := s.Repo.Create(&input); err != nil {
		return nil, err
	}

	if !host.HasRole(models.RoleHost) {
		if err := s.Users.AddRole(host.ID, models.RoleHost); err != nil {
			s.Logger.Warn("failed to grant host role", zap.String("userID", host.ID), zap.Error(err))
		}
	}

	s.Logger.Info("space listed", zap.String("spaceID", input.ID), zap.String("hostID", host.ID))
	return &input, nil
}

// Update replaces the mutable fields of a space owned by the host.
func (s *DefaultSpaceService) Update(host *models.User, id string, input models.Space) (*models.Space, error) {
	existing, err := s.owned(host, id)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.HostID = existing.HostID
	input.CreatedAt = existing.CreatedAt
	if err := validate(&input); err != nil {
		return nil, err
	}
	sortDates(input.AvailableDates)

	if err := s.Repo.Update(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// Delete removes a listing. Bookings against it are untouched; they keep
// their own lifecycle.
func (s *DefaultSpaceService) Delete(host *models.User, id string) error {
	if _, err := s.owned(host, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// SetAvailability replaces the availability allow-list for a space.
func (s *DefaultSpaceService) SetAvailability(host *models.User, id string, dates []string) error {
	if _, err := s.owned(host, id); err != nil {
		return err
	}
	for _, d := range dates {
		if _, err := time.Parse(booking.DayFormat, d); err != nil {
			return fmt.Errorf("%w: available date %q is not YYYY-MM-DD", ErrValidation, d)
		}
	}
	sortDates(dates)
	return s.Repo.SetAvailableDates(id, dates)
}

// Get fetches a single space.
func (s *DefaultSpaceService) Get(id string) (*models.Space, error) {
	sp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpaceNotFound
	}
	return sp, nil
}

// List returns all listed spaces.
func (s *DefaultSpaceService) List() ([]models.Space, error) {
	return s.Repo.GetAll()
}

// ListByHost returns a host's own listings.
func (s *DefaultSpaceService) ListByHost(hostID string) ([]models.Space, error) {
	return s.Repo.GetByHost(hostID)
}

func (s *DefaultSpaceService) owned(host *models.User, id string) (*models.Space, error) {
	sp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpaceNotFound
	}
	if host == nil || sp.HostID != host.ID {
		return nil, ErrNotOwner
	}
	return sp, nil
}

func sortDates(dates []string) {
	sort.Strings(dates)
}
