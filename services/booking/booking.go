package booking

import (
	"fmt"
	"time"

	bookingRepo "venuehub/database/repository/booking"
	spaceRepo "venuehub/database/repository/space"
	"venuehub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService assembles booking drafts into persisted pending
// bookings and answers booking queries.
type DefaultBookingService struct {
	Bookings       bookingRepo.BookingRepository
	Spaces         spaceRepo.SpaceRepository
	ServiceFeeRate float64 // fraction of base+amenities, 0 disables the fee
	Logger         *zap.Logger
}

// priced is the computed money/date breakdown shared by Quote and Submit.
type priced struct {
	dates     []string
	units     int
	base      float64
	amenities float64
	fee       float64
	total     float64
	startDay  time.Time
	startTime string // hourly only, "HH:MM"
	endTime   string // hourly only; "24:00" means end of day
}

// compute validates the draft against the space and produces the price and
// date-range breakdown. It does not persist anything.
func (s *DefaultBookingService) compute(space *models.Space, draft models.BookingDraft) (*priced, error) {
	if !space.SupportsMode(draft.BookingMode) {
		return nil, ErrUnsupportedMode
	}
	if draft.GuestCount < 1 || draft.GuestCount > space.Capacity {
		return nil, ErrGuestCount
	}
	if draft.DurationUnits < 1 {
		return nil, ErrInvalidDuration
	}

	startDay, err := time.Parse(DayFormat, draft.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// The confirmed-day set only matters when the space has no allow-list.
	var confirmed map[string]struct{}
	if len(space.AvailableDates) == 0 {
		confirmed, err = s.Bookings.ConfirmedDates(space.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load confirmed dates: %w", err)
		}
	}
	isAvailable := func(day time.Time) bool {
		return IsAvailable(space, confirmed, day)
	}

	if !isAvailable(startDay) {
		return nil, ErrDateUnavailable
	}

	units := ClampDuration(draft.BookingMode, draft.DurationUnits)

	var startTime, endTime string
	if draft.BookingMode == models.PricingModeHourly && draft.StartTime != "" {
		start, err := time.Parse("15:04", draft.StartTime)
		if err != nil {
			return nil, ErrInvalidStartTime
		}
		// Hourly bookings occupy a single day; the window may not spill
		// past midnight. An end of exactly midnight renders as "24:00".
		endMin := start.Hour()*60 + start.Minute() + units*60
		if endMin > 24*60 {
			return nil, ErrTimeWindow
		}
		startTime = draft.StartTime
		endTime = fmt.Sprintf("%02d:%02d", endMin/60, endMin%60)
	}

	dates := []string{DayKey(startDay)}
	if draft.BookingMode == models.PricingModeDaily {
		run := ExtendRange(startDay, units, isAvailable)
		units = len(run)
		dates = dates[:0]
		for _, day := range run {
			dates = append(dates, DayKey(day))
		}
	}

	base := ComputeBase(space, draft.BookingMode, units)
	amenities := AmenitiesTotal(space, draft.Amenities)
	fee := Round2(s.ServiceFeeRate * (base + amenities))

	return &priced{
		dates:     dates,
		units:     units,
		base:      base,
		amenities: amenities,
		fee:       fee,
		total:     base + amenities + fee,
		startDay:  startDay,
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

// Quote computes a price/availability preview without persisting anything.
// An unavailable start date yields Available=false rather than an error so
// the UI can render it inline.
func (s *DefaultBookingService) Quote(draft models.BookingDraft) (*models.BookingQuote, error) {
	space, err := s.Spaces.GetByID(draft.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch space: %w", err)
	}
	if space == nil {
		return nil, ErrSpaceNotFound
	}

	p, err := s.compute(space, draft)
	if err == ErrDateUnavailable {
		return &models.BookingQuote{Available: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.BookingQuote{
		Available:      true,
		Dates:          p.dates,
		EffectiveUnits: p.units,
		BasePrice:      p.base,
		AmenitiesPrice: p.amenities,
		ServiceFee:     p.fee,
		TotalPrice:     p.total,
	}, nil
}

// SubmitBooking persists a new pending booking for an authenticated client.
// There is no idempotency key: a retry after an unacknowledged success can
// create a duplicate pending booking, which is an accepted limitation.
func (s *DefaultBookingService) SubmitBooking(client *models.User, draft models.BookingDraft) (*models.BookingReceipt, error) {
	if client == nil || client.ID == "" {
		return nil, ErrNotPermitted
	}

	space, err := s.Spaces.GetByID(draft.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch space: %w", err)
	}
	if space == nil {
		return nil, ErrSpaceNotFound
	}

	p, err := s.compute(space, draft)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		SpaceID:        space.ID,
		ClientID:       client.ID,
		HostID:         space.HostID,
		BookingDate:    p.dates[0],
		Dates:          p.dates,
		BookingMode:    draft.BookingMode,
		DurationUnits:  p.units,
		GuestCount:     draft.GuestCount,
		Amenities:      draft.Amenities,
		BasePrice:      p.base,
		AmenitiesPrice: p.amenities,
		ServiceFee:     p.fee,
		TotalPrice:     p.total,
		StartTime:      p.startTime,
		EndTime:        p.endTime,
		Status:         models.BookingPending,
		PaymentStatus:  models.PaymentPending,
	}

	if err := s.Bookings.Create(&booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Logger != nil {
		s.Logger.Info("booking submitted",
			zap.String("bookingID", booking.ID),
			zap.String("spaceID", space.ID),
			zap.Int("units", p.units),
			zap.Float64("total", p.total))
	}

	return &models.BookingReceipt{
		BookingID:      booking.ID,
		Dates:          p.dates,
		EffectiveDays:  p.units,
		BasePrice:      p.base,
		AmenitiesPrice: p.amenities,
		ServiceFee:     p.fee,
		TotalPrice:     p.total,
	}, nil
}

// GetClientBookings lists a user's own bookings.
func (s *DefaultBookingService) GetClientBookings(clientID string) ([]models.Booking, error) {
	return s.Bookings.GetByClient(clientID)
}

// GetSpaceBookings lists bookings against a space, restricted to its host.
func (s *DefaultBookingService) GetSpaceBookings(requester *models.User, spaceID string) ([]models.Booking, error) {
	space, err := s.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch space: %w", err)
	}
	if space == nil {
		return nil, ErrSpaceNotFound
	}
	if requester == nil || space.HostID != requester.ID {
		return nil, ErrNotPermitted
	}
	return s.Bookings.GetBySpace(spaceID)
}

// GetBooking fetches a single booking visible to its client or host.
func (s *DefaultBookingService) GetBooking(requester *models.User, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if requester == nil || (b.ClientID != requester.ID && b.HostID != requester.ID) {
		return nil, ErrNotPermitted
	}
	return b, nil
}

// Cancel transitions a booking to cancelled. Only the booking's client or
// the space's host may cancel, and only from pending or confirmed.
func (s *DefaultBookingService) Cancel(requester *models.User, bookingID string) error {
	b, err := s.GetBooking(requester, bookingID)
	if err != nil {
		return err
	}
	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return ErrAlreadyFinal
	}
	return s.Bookings.UpdateStatus(b.ID, models.BookingCancelled)
}
