package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/testutil"
)

var tables = []string{"trips", "participants", "activities", "links"}

// TestMigrations runs the embedded migrations down to zero, up to the latest
// version, and back down, checking the schema at each step.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := testutil.NewProvider(db)
	require.NoError(t, err, "create goose provider")

	// The repo TestMain may have migrated this database already.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, len(tables), "one migration per table")

	for _, table := range tables {
		assert.True(t, tableExists(t, db, table), "expected table %q after up", table)
	}
	assert.True(t, indexExists(t, db, "participants_one_owner_per_trip"))

	statuses, err := provider.Status(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.NotEqual(t, goose.StatePending, s.State, "migration %s still pending", s.Source.Path)
	}

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	for _, table := range tables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	// Leave the schema current for whatever runs next against this database.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "goose up again")
}

// TestMigrations_OneOwnerPerTrip checks the partial unique index directly.
func TestMigrations_OneOwnerPerTrip(t *testing.T) {
	db := testutil.NewSQLDB(t)
	ctx := context.Background()

	provider, err := testutil.NewProvider(db)
	require.NoError(t, err)
	_, err = provider.Up(ctx)
	require.NoError(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	var tripID string
	err = tx.QueryRowContext(ctx,
		`INSERT INTO trips (destination, starts_at, ends_at) VALUES ('Lisbon', now(), now()) RETURNING id`,
	).Scan(&tripID)
	require.NoError(t, err)

	const owner = `INSERT INTO participants (trip_id, email, is_owner, is_confirmed) VALUES ($1, $2, true, true)`
	_, err = tx.ExecContext(ctx, owner, tripID, "ana@example.com")
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, owner, tripID, "bob@example.com")
	assert.Error(t, err, "second owner must violate the unique index")
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists), "check table %q", table)
	return exists
}

func indexExists(t *testing.T, db *sql.DB, index string) bool {
	t.Helper()
	const q = `SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = $1)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, index).Scan(&exists), "check index %q", index)
	return exists
}
