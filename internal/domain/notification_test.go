package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/planner-app/planner/internal/domain"
)

func TestTripConfirmationNotification(t *testing.T) {
	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC),
	}

	n := domain.TripConfirmationNotification(trip, domain.Recipient{Name: "Ana", Email: "ana@example.com"}, "http://api/trips/x/confirm")

	assert.Equal(t, "ana@example.com", n.To.Email)
	assert.Equal(t, "Ana", n.To.Name)
	assert.Equal(t, "Confirm your trip to Florianópolis on March 1, 2024", n.Subject)
	assert.Equal(t, domain.TemplateTripConfirmation, n.Template)
	assert.Equal(t, "http://api/trips/x/confirm", n.Data.ConfirmationURL)
	assert.True(t, n.Data.EndsAt.Equal(trip.EndsAt))
}

func TestTripConfirmationNotification_SubjectUsesTripLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 08:00 on March 1 in Tokyo is still February 29 in UTC.
	trip := domain.Trip{
		Destination: "Kyoto",
		StartsAt:    time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2024, 3, 2, 23, 0, 0, 0, time.UTC),
	}

	n := domain.TripConfirmationNotification(trip.In(tokyo), domain.Recipient{Email: "ana@example.com"}, "http://api/trips/x/confirm")

	assert.Equal(t, "Confirm your trip to Kyoto on March 1, 2024", n.Subject)
	assert.Equal(t, tokyo, n.Data.StartsAt.Location())
	assert.True(t, n.Data.StartsAt.Equal(trip.StartsAt), "the instant is unchanged")
}

func TestParticipantConfirmationNotification_NoName(t *testing.T) {
	trip := domain.Trip{Destination: "Lisbon", StartsAt: time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)}
	p := domain.Participant{ID: uuid.New(), Email: "bo@example.com"}

	n := domain.ParticipantConfirmationNotification(trip, p, "link")

	assert.Equal(t, domain.Recipient{Email: "bo@example.com"}, n.To)
	assert.Equal(t, "Confirm your attendance on the trip to Lisbon on July 14, 2025", n.Subject)
	assert.Equal(t, domain.TemplateParticipantConfirmation, n.Template)
}

func TestURLs(t *testing.T) {
	id := uuid.MustParse("8f0e7c1a-3b8e-4f57-9d0a-2c51b7d7a001")
	u := domain.URLs{APIBaseURL: "http://localhost:8080/", WebBaseURL: "https://planner.example.com"}

	assert.Equal(t, "http://localhost:8080/trips/8f0e7c1a-3b8e-4f57-9d0a-2c51b7d7a001/confirm", u.TripConfirmation(id))
	assert.Equal(t, "http://localhost:8080/participants/8f0e7c1a-3b8e-4f57-9d0a-2c51b7d7a001/confirm", u.ParticipantConfirmation(id))
	assert.Equal(t, "https://planner.example.com/trips/8f0e7c1a-3b8e-4f57-9d0a-2c51b7d7a001", u.TripPage(id))
}

func TestNewPaginationParams(t *testing.T) {
	intp := func(v int) *int { return &v }

	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(nil, nil))
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 5}, domain.NewPaginationParams(intp(3), intp(5)))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 100}, domain.NewPaginationParams(intp(0), intp(500)))
	assert.Equal(t, 10, domain.NewPaginationParams(intp(3), intp(5)).Offset())
}
