// Package service contains the business logic for the trip planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
)

// Notifier delivers a notification. Implementations live in internal/notify.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// TripService implements the trip lifecycle: create, update and confirm.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     Notifier
	urls         domain.URLs
	loc          *time.Location
	log          *slog.Logger
	now          func() time.Time
}

// NewTripService constructs a TripService backed by the provided repos.
// Dates in notifications are written in loc, the same zone the itinerary
// is bucketed in.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, notifier Notifier, urls domain.URLs, loc *time.Location, log *slog.Logger) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		notifier:     notifier,
		urls:         urls,
		loc:          loc,
		log:          log,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to reject past start dates.
func (s *TripService) WithClock(now func() time.Time) *TripService {
	s.now = now
	return s
}

// CreateTripInput is everything needed to plan a new trip.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// Create validates the input, then persists the trip, a confirmed owner and
// one unconfirmed participant per distinct invite email in one transaction.
// The owner is then asked to confirm the trip. A failed notification is
// logged and does not fail the call.
//
// Returns an error wrapping domain.ErrValidation before any repo call if the
// input is invalid.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := domain.ValidateDestination(in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := domain.ValidateDateRange(in.StartsAt, in.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}
	ownerName := strings.TrimSpace(in.OwnerName)
	if ownerName == "" {
		return domain.Trip{}, fmt.Errorf("%w: owner_name is required", domain.ErrValidation)
	}
	ownerEmail := normalizeEmail(in.OwnerEmail)
	if err := validateEmail(ownerEmail); err != nil {
		return domain.Trip{}, err
	}
	invitees, err := inviteeEmails(ownerEmail, in.EmailsToInvite)
	if err != nil {
		return domain.Trip{}, err
	}

	seed := make([]domain.Participant, 0, len(invitees)+1)
	seed = append(seed, domain.Participant{
		Name:        &ownerName,
		Email:       ownerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range invitees {
		seed = append(seed, domain.Participant{Email: email})
	}

	trip, _, err := s.trips.CreateWithParticipants(ctx, domain.Trip{
		Destination: strings.TrimSpace(in.Destination),
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}, seed)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	n := domain.TripConfirmationNotification(trip.In(s.loc), domain.Recipient{Name: ownerName, Email: ownerEmail}, s.urls.TripConfirmation(trip.ID))
	if err := s.notifier.Send(ctx, n); err != nil {
		s.log.WarnContext(ctx, "trip confirmation notification failed",
			slog.String("trip_id", trip.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return trip, nil
}

// inviteeEmails validates and de-duplicates the invite list, dropping the
// owner's own address.
func inviteeEmails(owner string, emails []string) ([]string, error) {
	seen := map[string]bool{owner: true}
	out := make([]string, 0, len(emails))
	for _, raw := range emails {
		email := normalizeEmail(raw)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		if seen[email] {
			continue
		}
		seen[email] = true
		out = append(out, email)
	}
	return out, nil
}

// GetByID returns a single trip by ID.
// Returns an error wrapping domain.ErrTripNotFound if it does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, tripNotFound("service.TripService.GetByID", err)
	}
	return trip, nil
}

// UpdateTripInput carries the editable fields of a trip.
type UpdateTripInput struct {
	ID          uuid.UUID
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
}

// Update re-validates destination and dates against the current time and
// persists them. The confirmation flag and participants are untouched.
func (s *TripService) Update(ctx context.Context, in UpdateTripInput) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, in.ID)
	if err != nil {
		return domain.Trip{}, tripNotFound("service.TripService.Update", err)
	}
	if err := domain.ValidateDestination(in.Destination); err != nil {
		return domain.Trip{}, err
	}
	if err := domain.ValidateDateRange(in.StartsAt, in.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}

	trip.Destination = strings.TrimSpace(in.Destination)
	trip.StartsAt = in.StartsAt
	trip.EndsAt = in.EndsAt

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, tripNotFound("service.TripService.Update", err)
	}
	return updated, nil
}

// NotificationFailure records one invitee whose confirmation request could
// not be sent.
type NotificationFailure struct {
	ParticipantID uuid.UUID
	Email         string
	Err           error
}

// ConfirmResult describes what a confirmation did.
type ConfirmResult struct {
	Trip domain.Trip
	// AlreadyConfirmed is true when the trip was confirmed before this call.
	// No notifications are sent in that case.
	AlreadyConfirmed bool
	// Notified counts invitees whose notification was handed off successfully.
	Notified int
	Failures []NotificationFailure
}

// Confirm marks the trip confirmed and asks every non-owner participant to
// confirm their attendance. Confirming an already-confirmed trip is a no-op.
//
// Notifications are sent concurrently, one goroutine per invitee. Every send
// is attempted; failures are logged and reported in the result and never
// cancel the remaining sends.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (ConfirmResult, error) {
	trip, changed, err := s.trips.Confirm(ctx, id)
	if err != nil {
		return ConfirmResult{}, tripNotFound("service.TripService.Confirm", err)
	}
	if !changed {
		return ConfirmResult{Trip: trip, AlreadyConfirmed: true}, nil
	}

	invitees, err := s.participants.ListInvitees(ctx, id)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("service.TripService.Confirm: list invitees: %w", err)
	}

	local := trip.In(s.loc)
	errs := make([]error, len(invitees))
	var wg sync.WaitGroup
	for i, p := range invitees {
		wg.Go(func() {
			n := domain.ParticipantConfirmationNotification(local, p, s.urls.ParticipantConfirmation(p.ID))
			errs[i] = s.notifier.Send(ctx, n)
		})
	}
	wg.Wait()

	result := ConfirmResult{Trip: trip}
	for i, err := range errs {
		if err == nil {
			result.Notified++
			continue
		}
		p := invitees[i]
		result.Failures = append(result.Failures, NotificationFailure{ParticipantID: p.ID, Email: p.Email, Err: err})
		s.log.WarnContext(ctx, "participant confirmation notification failed",
			slog.String("trip_id", id.String()),
			slog.String("participant_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return result, nil
}
