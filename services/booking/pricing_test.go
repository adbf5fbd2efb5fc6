package booking

import (
	"testing"

	"venuehub/models"

	"github.com/stretchr/testify/assert"
)

func pricedSpace() *models.Space {
	return &models.Space{
		PricingMode: models.PricingModeBoth,
		DailyPrice:  500,
		HourlyPrice: 100,
		Amenities: []models.Amenity{
			{Name: "projector", Price: 150},
			{Name: "catering", Price: 300},
		},
	}
}

func TestComputeBase(t *testing.T) {
	space := pricedSpace()

	assert.Equal(t, 400.0, ComputeBase(space, models.PricingModeHourly, 4))
	assert.Equal(t, 1000.0, ComputeBase(space, models.PricingModeDaily, 2))
	assert.Equal(t, 0.0, ComputeBase(space, "weekly", 2))
}

func TestAmenitiesTotal(t *testing.T) {
	space := pricedSpace()

	assert.Equal(t, 150.0, AmenitiesTotal(space, []string{"projector"}))
	assert.Equal(t, 450.0, AmenitiesTotal(space, []string{"projector", "catering"}))
	// Names the space does not offer contribute nothing.
	assert.Equal(t, 150.0, AmenitiesTotal(space, []string{"projector", "jacuzzi"}))
	assert.Equal(t, 0.0, AmenitiesTotal(space, nil))
}

func TestComputeTotal(t *testing.T) {
	space := pricedSpace()

	total := ComputeTotal(space, models.PricingModeDaily, 2, []string{"projector"})
	assert.Equal(t, 1150.0, total)

	// Idempotent: recomputing the same shape yields the same figure.
	assert.Equal(t, total, ComputeTotal(space, models.PricingModeDaily, 2, []string{"projector"}))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(115000), ToMinorUnits(1150.0))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(10), ToMinorUnits(0.1))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.46, Round2(10.456))
	assert.Equal(t, 115.0, Round2(114.999999))
}

func TestClampDuration(t *testing.T) {
	assert.Equal(t, MinBookingHours, ClampDuration(models.PricingModeHourly, 0))
	assert.Equal(t, MaxBookingHours, ClampDuration(models.PricingModeHourly, 25))
	assert.Equal(t, 8, ClampDuration(models.PricingModeHourly, 8))

	assert.Equal(t, MinBookingDays, ClampDuration(models.PricingModeDaily, -1))
	assert.Equal(t, MaxBookingDays, ClampDuration(models.PricingModeDaily, 31))
	assert.Equal(t, 7, ClampDuration(models.PricingModeDaily, 7))
}
