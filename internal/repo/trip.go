// Package repo contains all database access logic for the trip planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/planner-app/planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
// Accepting it instead of *pgxpool.Pool lets integration tests pass a
// transaction that is rolled back after each test. Begin on a pgx.Tx opens a
// savepoint, so repos that need their own transaction still work inside one.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// CreateWithParticipants inserts a trip and its seeded participants in a
	// single transaction. Either every row is committed or none is.
	// The participants' TripID fields are ignored and set to the new trip's ID.
	CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Update overwrites destination, starts_at and ends_at and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Confirm marks the trip confirmed only if it is currently unconfirmed
	// and returns the trip as stored afterwards. It reports true when this
	// call performed the transition and false when the trip was already
	// confirmed. Returns domain.ErrNotFound if the trip does not exist.
	Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, starts_at, ends_at, is_confirmed, created_at, updated_at`

// CreateWithParticipants inserts the trip row and then every participant row
// inside pgx.BeginFunc, which commits when the callback returns nil and rolls
// back on any error.
func (r *pgTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error) {
	const q = `
		INSERT INTO trips (destination, starts_at, ends_at, is_confirmed)
		VALUES (@destination, @starts_at, @ends_at, @is_confirmed)
		RETURNING ` + tripColumns

	var (
		created domain.Trip
		seeded  []domain.Participant
	)
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"destination":  trip.Destination,
			"starts_at":    trip.StartsAt,
			"ends_at":      trip.EndsAt,
			"is_confirmed": trip.IsConfirmed,
		}
		var err error
		created, err = scanTrip(tx.QueryRow(ctx, q, args))
		if err != nil {
			return fmt.Errorf("insert trip: %w", err)
		}

		seeded = make([]domain.Participant, 0, len(participants))
		for _, p := range participants {
			p.TripID = created.ID
			row, err := insertParticipant(ctx, tx, p)
			if err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
			seeded = append(seeded, row)
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.CreateWithParticipants: %w", err)
	}
	return created, seeded, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Confirm flips is_confirmed with a conditional UPDATE so that two concurrent
// confirmations cannot both observe an unconfirmed trip. Only a miss costs a
// second query, which tells an already-confirmed trip from a missing one.
func (r *pgTripRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Trip, bool, error) {
	q := `
		UPDATE trips
		SET is_confirmed = true,
		    updated_at   = now()
		WHERE id = @id AND NOT is_confirmed
		RETURNING ` + tripColumns

	trip, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err == nil {
		return trip, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Trip{}, false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}

	trip, err = r.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	return trip, false, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row (selected with tripColumns) into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
