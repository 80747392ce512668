package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
)

// ParticipantService implements invitations and attendance confirmation.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	notifier     Notifier
	urls         domain.URLs
	loc          *time.Location
	log          *slog.Logger
}

// NewParticipantService constructs a ParticipantService backed by the provided
// repos. Invitation dates are written in loc.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, notifier Notifier, urls domain.URLs, loc *time.Location, log *slog.Logger) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		notifier:     notifier,
		urls:         urls,
		loc:          loc,
		log:          log,
	}
}

// Invite adds an unconfirmed participant to a trip and sends them a
// confirmation request. A failed notification is logged and does not fail
// the call.
// Returns domain.ErrTripNotFound (checked before any write) or
// domain.ErrInvalidEmail.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, tripNotFound("service.ParticipantService.Invite", err)
	}
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return domain.Participant{}, err
	}

	p, err := s.participants.Create(ctx, domain.Participant{TripID: tripID, Email: email})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	n := domain.ParticipantConfirmationNotification(trip.In(s.loc), p, s.urls.ParticipantConfirmation(p.ID))
	if err := s.notifier.Send(ctx, n); err != nil {
		s.log.WarnContext(ctx, "invite notification failed",
			slog.String("trip_id", tripID.String()),
			slog.String("participant_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	return p, nil
}

// Confirm marks a participant as attending. Confirming twice is a no-op.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.Confirm(ctx, id)
	if err != nil {
		return domain.Participant{}, participantNotFound("service.ParticipantService.Confirm", err)
	}
	return p, nil
}

// GetByID returns a single participant.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, participantNotFound("service.ParticipantService.GetByID", err)
	}
	return p, nil
}

// ListByTripID returns all participants of a trip, owner first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, tripNotFound("service.ParticipantService.ListByTripID", err)
	}
	ps, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	if ps == nil {
		return []domain.Participant{}, nil
	}
	return ps, nil
}
