package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/calendar"
	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
)

// ActivityService manages a trip's activities and the itinerary views built
// from them.
type ActivityService struct {
	trips        repo.TripRepo
	activities   repo.ActivityRepo
	participants repo.ParticipantRepo
	loc          *time.Location
	now          func() time.Time
}

// NewActivityService constructs an ActivityService. loc decides which
// calendar day an instant belongs to; nil means UTC.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo, participants repo.ParticipantRepo, loc *time.Location) *ActivityService {
	if loc == nil {
		loc = time.UTC
	}
	return &ActivityService{
		trips:        trips,
		activities:   activities,
		participants: participants,
		loc:          loc,
		now:          time.Now,
	}
}

// CreateActivityInput carries a new activity.
type CreateActivityInput struct {
	TripID   uuid.UUID
	Title    string
	OccursAt time.Time
}

// Create validates and persists an activity. OccursAt must fall on one of
// the trip's calendar days.
func (s *ActivityService) Create(ctx context.Context, in CreateActivityInput) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, in.TripID)
	if err != nil {
		return domain.Activity{}, tripNotFound("service.ActivityService.Create", err)
	}
	if err := validateTitle("title", in.Title, 1); err != nil {
		return domain.Activity{}, err
	}
	if !domain.OnTripDay(trip.StartsAt.In(s.loc), trip.EndsAt, in.OccursAt) {
		return domain.Activity{}, fmt.Errorf("%w: occurs_at must fall between %s and %s",
			domain.ErrInvalidActivityDate,
			trip.StartsAt.In(s.loc).Format(time.DateOnly),
			trip.EndsAt.In(s.loc).Format(time.DateOnly),
		)
	}

	a, err := s.activities.Create(ctx, domain.Activity{
		TripID:   in.TripID,
		Title:    strings.TrimSpace(in.Title),
		OccursAt: in.OccursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return a, nil
}

// Itinerary returns one bucket per calendar day of the trip with that day's
// activities. It is recomputed on every call.
func (s *ActivityService) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, tripNotFound("service.ActivityService.Itinerary", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Itinerary: %w", err)
	}
	return domain.Schedule(trip.StartsAt.In(s.loc), trip.EndsAt, activities), nil
}

// Calendar renders the trip, its participants and activities as an
// iCalendar document.
func (s *ActivityService) Calendar(ctx context.Context, tripID uuid.UUID) ([]byte, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, tripNotFound("service.ActivityService.Calendar", err)
	}
	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Calendar: participants: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Calendar: activities: %w", err)
	}

	doc, err := calendar.Encode(calendar.Build(calendar.Trip{
		Trip:         trip,
		Participants: participants,
		Activities:   activities,
		Location:     s.loc,
		Stamp:        s.now(),
	}))
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Calendar: %w", err)
	}
	return doc, nil
}
