package booking

import "time"

// ExtendRange walks forward from start one calendar day at a time, appending
// each day while isAvailable holds, until desiredDays have been collected or
// an unavailable day interrupts the run. The returned sequence always begins
// with start regardless of its own availability; rejecting an unavailable
// start date is the caller's job.
//
// An interrupted walk is a silent clamp, not an error: the caller adopts the
// returned run length as the effective duration and surfaces a notice to the
// user. desiredDays is expected to be pre-clamped to [1, MaxBookingDays].
func ExtendRange(start time.Time, desiredDays int, isAvailable func(time.Time) bool) []time.Time {
	run := []time.Time{start}

	day := start
	for len(run) < desiredDays {
		day = day.AddDate(0, 0, 1)
		if !isAvailable(day) {
			break
		}
		run = append(run, day)
	}
	return run
}
