package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinLinkTitleLength is the shortest title accepted for a link.
const MinLinkTitleLength = 4

// Link is a reference URL shared with everyone on a trip
// (booking confirmations, maps, documents).
type Link struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	URL       string
	CreatedAt time.Time
}
