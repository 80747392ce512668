// Package domain contains the core data types and rules for the trip planner.
// It has no dependencies on the database or transport layers and is imported
// by every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinDestinationLength is the shortest destination accepted for a trip.
const MinDestinationLength = 4

// Trip is the top-level planning aggregate. Participants, activities and
// links all belong to exactly one trip.
//
// A trip starts unconfirmed and becomes confirmed exactly once, when its owner
// follows the confirmation link sent at creation time.
type Trip struct {
	ID          uuid.UUID
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
	IsConfirmed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateDestination rejects destinations shorter than MinDestinationLength
// characters once surrounding whitespace is removed.
func ValidateDestination(destination string) error {
	if len([]rune(strings.TrimSpace(destination))) < MinDestinationLength {
		return fmt.Errorf("%w: destination must be at least %d characters", ErrInvalidDestination, MinDestinationLength)
	}
	return nil
}

// In returns a copy of t with StartsAt and EndsAt expressed in loc, so that
// formatting them yields the calendar days the itinerary uses.
func (t Trip) In(loc *time.Location) Trip {
	t.StartsAt = t.StartsAt.In(loc)
	t.EndsAt = t.EndsAt.In(loc)
	return t
}
