package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/repo"
)

func TestActivityRepo_CreateAndList_OrderedByOccursAt(t *testing.T) {
	tx := newTestTx(t)
	trip, _ := createTrip(t, repo.NewTripRepo(tx))
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()

	late := domain.Activity{TripID: trip.ID, Title: "Dinner", OccursAt: time.Date(2031, 6, 2, 20, 0, 0, 0, time.UTC)}
	early := domain.Activity{TripID: trip.ID, Title: "Museum", OccursAt: time.Date(2031, 6, 2, 10, 0, 0, 0, time.UTC)}

	created, err := r.Create(ctx, late)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", created.Title)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = r.Create(ctx, early)
	require.NoError(t, err)

	got, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Museum", got[0].Title)
	assert.Equal(t, "Dinner", got[1].Title)
}

func TestActivityRepo_ListByTripID_Empty(t *testing.T) {
	tx := newTestTx(t)
	trip, _ := createTrip(t, repo.NewTripRepo(tx))

	got, err := repo.NewActivityRepo(tx).ListByTripID(context.Background(), trip.ID)

	require.NoError(t, err)
	assert.Empty(t, got)
}
