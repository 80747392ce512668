package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planner-app/planner/internal/domain"
	"github.com/planner-app/planner/internal/notify"
)

const queueKey = "planner:test:notifications"

// seededRedis starts a miniredis with n queued trip confirmations and points
// the plannerctl config at it.
func seededRedis(t *testing.T, emails ...string) {
	t.Helper()
	mr := miniredis.RunT(t)

	t.Setenv("DATABASE_URL", "postgres://unused")
	t.Setenv("REDIS_URL", "redis://"+mr.Addr())
	t.Setenv("NOTIFY_QUEUE_KEY", queueKey)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	outbox := notify.NewOutbox(client, queueKey, "Planner Team <hello@planner.local>", slog.New(slog.NewTextHandler(io.Discard, nil)))

	trip := domain.Trip{
		Destination: "Florianópolis",
		StartsAt:    time.Date(2031, 3, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2031, 3, 3, 18, 0, 0, 0, time.UTC),
	}
	for _, email := range emails {
		n := domain.TripConfirmationNotification(trip, domain.Recipient{Email: email}, "http://api.test/trips/x/confirm")
		require.NoError(t, outbox.Send(context.Background(), n))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"plannerctl"}, args...))
	return out.String(), err
}

func TestOutboxPending(t *testing.T) {
	seededRedis(t, "ana@example.com", "bob@example.com")

	out, err := run(t, "outbox", "pending")

	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestOutboxPeek_OldestFirst(t *testing.T) {
	seededRedis(t, "ana@example.com", "bob@example.com", "cy@example.com")

	out, err := run(t, "outbox", "peek", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second notify.Message
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "<ana@example.com>", first.To)
	assert.Equal(t, "<bob@example.com>", second.To)
}

func TestOutboxPeek_LeavesQueueIntact(t *testing.T) {
	seededRedis(t, "ana@example.com")

	_, err := run(t, "outbox", "peek")
	require.NoError(t, err)

	out, err := run(t, "outbox", "pending")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestOutbox_RequiresRedisURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://unused")
	t.Setenv("REDIS_URL", "")

	_, err := run(t, "outbox", "pending")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_URL")
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := run(t, "migrate", "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
