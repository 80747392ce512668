package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip.
// Every trip has exactly one owner, created pre-confirmed alongside the trip.
// Invitees start unconfirmed and have no name until they supply one.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        *string
	Email       string
	IsOwner     bool
	IsConfirmed bool
	CreatedAt   time.Time
}
