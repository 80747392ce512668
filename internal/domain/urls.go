package domain

import (
	"strings"

	"github.com/google/uuid"
)

// URLs builds the absolute links embedded in notifications and used for
// post-confirmation redirects.
type URLs struct {
	// APIBaseURL is where confirmation links point (this server).
	APIBaseURL string
	// WebBaseURL is the front-end users are redirected to after confirming.
	WebBaseURL string
}

// TripConfirmation returns the link an owner follows to confirm a trip.
func (u URLs) TripConfirmation(tripID uuid.UUID) string {
	return join(u.APIBaseURL, "trips", tripID.String(), "confirm")
}

// ParticipantConfirmation returns the link an invitee follows to confirm attendance.
func (u URLs) ParticipantConfirmation(participantID uuid.UUID) string {
	return join(u.APIBaseURL, "participants", participantID.String(), "confirm")
}

// TripPage returns the front-end page for a trip.
func (u URLs) TripPage(tripID uuid.UUID) string {
	return join(u.WebBaseURL, "trips", tripID.String())
}

func join(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
