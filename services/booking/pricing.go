package booking

import (
	"math"

	"venuehub/models"
)

// Duration bounds per booking mode.
const (
	MinBookingHours = 1
	MaxBookingHours = 24
	MinBookingDays  = 1
	MaxBookingDays  = 30
)

// ComputeBase returns the base charge for a booking: unit price times
// duration, where the unit follows the mode (hours or days).
func ComputeBase(space *models.Space, mode string, duration int) float64 {
	switch mode {
	case models.PricingModeHourly:
		return space.HourlyPrice * float64(duration)
	case models.PricingModeDaily:
		return space.DailyPrice * float64(duration)
	}
	return 0
}

// AmenitiesTotal sums the flat prices of the selected add-ons. Add-ons are
// not scaled by duration; names the space does not offer contribute nothing.
func AmenitiesTotal(space *models.Space, selected []string) float64 {
	total := 0.0
	for _, name := range selected {
		if price, ok := space.AmenityPrice(name); ok {
			total += price
		}
	}
	return total
}

// ComputeTotal returns base plus amenities for the given booking shape.
// Service fees are the caller's line item; this function knows no fee policy.
// Pure and idempotent.
func ComputeTotal(space *models.Space, mode string, duration int, selected []string) float64 {
	return ComputeBase(space, mode, duration) + AmenitiesTotal(space, selected)
}

// ToMinorUnits converts a monetary total to the integer minor-unit amount
// the payment gateway expects: rounded to two decimals, times 100.
func ToMinorUnits(total float64) int64 {
	return int64(math.Round(total * 100))
}

// Round2 rounds a monetary value to two decimals. Used for derived line
// items (the service fee); display formatting stays a presentation concern.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ClampDuration bounds a requested duration to the valid range for the mode.
func ClampDuration(mode string, units int) int {
	min, max := MinBookingDays, MaxBookingDays
	if mode == models.PricingModeHourly {
		min, max = MinBookingHours, MaxBookingHours
	}
	if units < min {
		return min
	}
	if units > max {
		return max
	}
	return units
}
