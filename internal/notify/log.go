package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planner-app/planner/internal/domain"
)

// LogNotifier renders notifications and writes them to the log instead of
// delivering them. Used when no outbox is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier returns a LogNotifier writing to log.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send renders n so template errors surface in development, then logs it.
func (l *LogNotifier) Send(ctx context.Context, n domain.Notification) error {
	html, err := Render(n)
	if err != nil {
		return fmt.Errorf("notify.LogNotifier.Send: %w", err)
	}

	l.log.InfoContext(ctx, "notification",
		slog.String("to", address(n.To)),
		slog.String("subject", n.Subject),
		slog.String("template", n.Template),
		slog.String("confirmation_url", n.Data.ConfirmationURL),
		slog.Int("html_bytes", len(html)),
	)
	return nil
}
