package booking

import (
	"time"

	"venuehub/models"
)

// DayFormat is the wire format for calendar days throughout the system.
const DayFormat = "2006-01-02"

// DayKey normalizes a timestamp to its calendar day, discarding time-of-day
// and timezone. Two instants on the same wall-clock day compare equal.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// IsAvailable decides whether a space can be booked on the given day.
//
// A space with an explicit allow-list is bookable exactly on the listed days.
// Without an allow-list, a day is bookable unless it is already covered by a
// confirmed booking; the caller supplies that set (see
// BookingRepository.ConfirmedDates). Pure function of its inputs.
func IsAvailable(space *models.Space, confirmedDates map[string]struct{}, day time.Time) bool {
	key := DayKey(day)

	if len(space.AvailableDates) > 0 {
		for _, d := range space.AvailableDates {
			if d == key {
				return true
			}
		}
		return false
	}

	_, taken := confirmedDates[key]
	return !taken
}
