package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
	"github.com/planner-app/planner/testutil"
)

// newTestTx opens a transaction against the test database that is rolled back
// when the test finishes, giving free per-test isolation. Every repo built on
// the returned tx sees the same uncommitted rows.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Lisbon",
		StartsAt:    time.Date(2031, 6, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2031, 6, 5, 18, 0, 0, 0, time.UTC),
	}
}

func ownerFixture() domain.Participant {
	name := "Ana Owner"
	return domain.Participant{Name: &name, Email: "ana@example.com", IsOwner: true, IsConfirmed: true}
}

// createTrip seeds a trip with an owner and the given invitee emails.
func createTrip(t *testing.T, r repo.TripRepo, invitees ...string) (domain.Trip, []domain.Participant) {
	t.Helper()
	seed := []domain.Participant{ownerFixture()}
	for _, email := range invitees {
		seed = append(seed, domain.Participant{Email: email})
	}
	trip, participants, err := r.CreateWithParticipants(context.Background(), tripFixture(), seed)
	require.NoError(t, err)
	return trip, participants
}

var missingID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

func TestTripRepo_CreateWithParticipants(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	trip, participants := createTrip(t, r, "bob@example.com", "cleo@example.com")

	assert.NotEqual(t, uuid.Nil, trip.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "Lisbon", trip.Destination)
	assert.True(t, trip.StartsAt.Equal(tripFixture().StartsAt))
	assert.True(t, trip.EndsAt.Equal(tripFixture().EndsAt))
	assert.False(t, trip.IsConfirmed)
	assert.False(t, trip.CreatedAt.IsZero(), "CreatedAt should be set by DB")

	require.Len(t, participants, 3)
	for _, p := range participants {
		assert.Equal(t, trip.ID, p.TripID)
	}
	assert.True(t, participants[0].IsOwner)
	assert.True(t, participants[0].IsConfirmed)
	require.NotNil(t, participants[0].Name)
	assert.Equal(t, "Ana Owner", *participants[0].Name)
	assert.False(t, participants[1].IsOwner)
	assert.False(t, participants[1].IsConfirmed)
	assert.Nil(t, participants[1].Name)
}

func TestTripRepo_CreateWithParticipants_RollsBackOnFailure(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	var before int
	require.NoError(t, tx.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&before))

	// A second owner violates the one-owner-per-trip index after the trip row is inserted.
	_, _, err := r.CreateWithParticipants(ctx, tripFixture(), []domain.Participant{ownerFixture(), ownerFixture()})
	require.Error(t, err)

	var after int
	require.NoError(t, tx.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&after))
	assert.Equal(t, before, after, "trip row must not survive a failed participant insert")
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	created, _ := createTrip(t, r)

	got, err := r.GetByID(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destination, got.Destination)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), missingID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	created, _ := createTrip(t, r)

	created.Destination = "Porto"
	created.EndsAt = created.EndsAt.AddDate(0, 0, 2)
	got, err := r.Update(context.Background(), created)

	require.NoError(t, err)
	assert.Equal(t, "Porto", got.Destination)
	assert.True(t, got.EndsAt.Equal(created.EndsAt))
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	trip := tripFixture()
	trip.ID = missingID
	_, err := r.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Confirm(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()
	created, _ := createTrip(t, r)

	confirmed, changed, err := r.Confirm(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, changed, "first confirmation performs the transition")
	assert.Equal(t, created.ID, confirmed.ID)
	assert.True(t, confirmed.IsConfirmed)

	again, changed, err := r.Confirm(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, changed, "second confirmation is a no-op")
	assert.True(t, again.IsConfirmed)
	assert.Equal(t, created.Destination, again.Destination)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)
}

func TestTripRepo_Confirm_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, _, err := r.Confirm(context.Background(), missingID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
