package booking

import (
	"testing"
	"time"

	"venuehub/models"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DayFormat, s)
	assert.NoError(t, err)
	return d
}

func TestIsAvailable_AllowList(t *testing.T) {
	space := &models.Space{
		AvailableDates: []string{"2026-06-01", "2026-06-02"},
	}

	assert.True(t, IsAvailable(space, nil, day(t, "2026-06-01")))
	assert.True(t, IsAvailable(space, nil, day(t, "2026-06-02")))
	assert.False(t, IsAvailable(space, nil, day(t, "2026-06-03")))
}

func TestIsAvailable_AllowListIgnoresConfirmedSet(t *testing.T) {
	// With an allow-list, confirmed bookings do not factor in.
	space := &models.Space{
		AvailableDates: []string{"2026-06-01"},
	}
	confirmed := map[string]struct{}{"2026-06-01": {}}

	assert.True(t, IsAvailable(space, confirmed, day(t, "2026-06-01")))
}

func TestIsAvailable_FallbackConfirmedDates(t *testing.T) {
	space := &models.Space{}
	confirmed := map[string]struct{}{"2026-06-02": {}}

	assert.True(t, IsAvailable(space, confirmed, day(t, "2026-06-01")))
	assert.False(t, IsAvailable(space, confirmed, day(t, "2026-06-02")))
}

func TestIsAvailable_NoAllowListNoConfirmed(t *testing.T) {
	space := &models.Space{}

	assert.True(t, IsAvailable(space, nil, day(t, "2026-06-01")))
}

func TestDayKey_NormalizesTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "2026-06-01", DayKey(morning))
	assert.Equal(t, DayKey(morning), DayKey(evening))
}
