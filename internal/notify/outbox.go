package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/planner-app/planner/internal/domain"
)

// Message is the envelope pushed onto the outbox list. The mail worker pops
// from the right, so the list is oldest-last.
type Message struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	HTML      string    `json:"html"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"created_at"`
}

// Outbox queues rendered notifications on a Redis list.
type Outbox struct {
	client *redis.Client
	key    string
	from   string
	log    *slog.Logger
	now    func() time.Time
}

// NewOutbox returns an Outbox that pushes onto key and stamps every message
// with the from address.
func NewOutbox(client *redis.Client, key, from string, log *slog.Logger) *Outbox {
	return &Outbox{
		client: client,
		key:    key,
		from:   from,
		log:    log,
		now:    time.Now,
	}
}

// Send renders n and enqueues it. A nil error means the message is durably
// queued, not that it was delivered.
func (o *Outbox) Send(ctx context.Context, n domain.Notification) error {
	html, err := Render(n)
	if err != nil {
		return fmt.Errorf("notify.Outbox.Send: %w", err)
	}

	msg := Message{
		ID:        uuid.New(),
		From:      o.from,
		To:        address(n.To),
		Subject:   n.Subject,
		HTML:      html,
		Template:  n.Template,
		CreatedAt: o.now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notify.Outbox.Send: marshal: %w", err)
	}

	if err := o.client.LPush(ctx, o.key, payload).Err(); err != nil {
		return fmt.Errorf("notify.Outbox.Send: lpush: %w", err)
	}

	o.log.DebugContext(ctx, "notification queued",
		slog.String("id", msg.ID.String()),
		slog.String("template", n.Template),
		slog.String("queue", o.key),
	)
	return nil
}

// Pending returns the number of messages waiting in the outbox.
func (o *Outbox) Pending(ctx context.Context) (int64, error) {
	n, err := o.client.LLen(ctx, o.key).Result()
	if err != nil {
		return 0, fmt.Errorf("notify.Outbox.Pending: %w", err)
	}
	return n, nil
}

// Peek returns up to limit queued messages without removing them, next to be
// delivered first.
func (o *Outbox) Peek(ctx context.Context, limit int64) ([]Message, error) {
	if limit <= 0 {
		return []Message{}, nil
	}

	raw, err := o.client.LRange(ctx, o.key, -limit, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("notify.Outbox.Peek: %w", err)
	}

	out := make([]Message, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var m Message
		if err := json.Unmarshal([]byte(raw[i]), &m); err != nil {
			return nil, fmt.Errorf("notify.Outbox.Peek: decode: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}
