package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/planner-app/planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// Create inserts a new participant and returns the persisted record.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a single participant by its UUID.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns every participant of a trip, owner first.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// ListInvitees returns the non-owner participants of a trip.
	ListInvitees(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm sets is_confirmed and returns the updated record. Confirming an
	// already-confirmed participant succeeds without changing anything.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_owner, is_confirmed, created_at`

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	result, err := insertParticipant(ctx, r.db, p)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = @id`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, created_at, email`

	result, err := r.list(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListInvitees(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id AND is_owner = false
		ORDER BY created_at, email`

	result, err := r.list(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListInvitees: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id
		RETURNING ` + participantColumns

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) list(ctx context.Context, q string, tripID uuid.UUID) ([]domain.Participant, error) {
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// insertParticipant is shared by ParticipantRepo.Create and the seeding step
// of TripRepo.CreateWithParticipants, which passes its transaction as db.
func insertParticipant(ctx context.Context, db db, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
		RETURNING ` + participantColumns

	args := pgx.NamedArgs{
		"trip_id":      p.TripID,
		"name":         p.Name, // nil becomes NULL
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	}
	return scanParticipant(db.QueryRow(ctx, q, args))
}

// scanParticipant maps a row selected with participantColumns into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)

	err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		n := name.String
		p.Name = &n
	}
	return p, nil
}
