package domain

import (
	"fmt"
	"time"
)

// ValidateDateRange enforces the temporal invariants shared by trip creation
// and trip update:
//   - start must not be before now
//   - end must not be before start
//
// now is supplied by the caller so an update is checked against the current
// moment rather than the moment the trip was first created.
func ValidateDateRange(start, end, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: starts_at must not be in the past", ErrInvalidDateRange)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", ErrInvalidDateRange)
	}
	return nil
}
