package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a dated event within a trip. Activities are immutable once
// created and are read back through Schedule.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	OccursAt  time.Time
	CreatedAt time.Time
}
