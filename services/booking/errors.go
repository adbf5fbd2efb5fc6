package booking

import "errors"

// Sentinel errors surfaced to handlers, which map them onto HTTP statuses.
var (
	ErrSpaceNotFound    = errors.New("space not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUnsupportedMode  = errors.New("space does not support the requested booking mode")
	ErrDateUnavailable  = errors.New("requested start date is not available")
	ErrInvalidDate      = errors.New("invalid booking date, expected YYYY-MM-DD")
	ErrInvalidDuration  = errors.New("duration must be at least one unit")
	ErrGuestCount       = errors.New("guest count must be between 1 and the space capacity")
	ErrInvalidStartTime = errors.New("invalid start time, expected HH:MM")
	ErrTimeWindow       = errors.New("hourly booking must end by midnight")
	ErrNotPermitted     = errors.New("caller is not permitted to act on this booking")
	ErrAlreadyFinal     = errors.New("booking is already in a final state")
)
