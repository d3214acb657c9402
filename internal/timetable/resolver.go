package timetable

import (
	"fmt"
	"time"
)

// resolveDeparture combines a listed "HH:MM" departure with the reference
// instant. A time of day strictly earlier than the reference rolls forward to
// the next calendar day; a time exactly equal to the reference stays on the
// same day — policy: such a trip is departing now, not tomorrow. The result
// keeps the reference instant's location, no conversion happens.
func resolveDeparture(clock string, requestedAt time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid departure time %q: %w", clock, err)
	}

	candidate := time.Date(
		requestedAt.Year(), requestedAt.Month(), requestedAt.Day(),
		t.Hour(), t.Minute(), 0, 0,
		requestedAt.Location(),
	)
	if candidate.Before(requestedAt) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate, nil
}
