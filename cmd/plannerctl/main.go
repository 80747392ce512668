// Command plannerctl is the operator tool for the planner API. It applies
// database migrations and inspects the notification outbox.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/planner-app/planner/internal/config"
	"github.com/planner-app/planner/internal/notify"
	"github.com/planner-app/planner/migrations"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("plannerctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "plannerctl",
		Usage: "Operate the planner database and notification outbox.",
		Commands: []*cli.Command{
			migrateCommand(),
			outboxCommand(),
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or inspect schema migrations.",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations.",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					results, err := p.Up(c.Context)
					if err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					for _, r := range results {
						fmt.Fprintf(c.App.Writer, "applied %s (%s)\n", r.Source.Path, r.Duration.Round(time.Millisecond))
					}
					if len(results) == 0 {
						fmt.Fprintln(c.App.Writer, "no pending migrations")
					}
					return nil
				}),
			},
			{
				Name:  "down",
				Usage: "Roll back the most recent migration.",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					r, err := p.Down(c.Context)
					if err != nil {
						if errors.Is(err, goose.ErrNoNextVersion) {
							fmt.Fprintln(c.App.Writer, "nothing to roll back")
							return nil
						}
						return fmt.Errorf("migrate down: %w", err)
					}
					fmt.Fprintf(c.App.Writer, "rolled back %s\n", r.Source.Path)
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "List every migration and whether it is applied.",
				Action: withProvider(func(c *cli.Context, p *goose.Provider) error {
					statuses, err := p.Status(c.Context)
					if err != nil {
						return fmt.Errorf("migrate status: %w", err)
					}
					tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
					for _, s := range statuses {
						applied := "-"
						if !s.AppliedAt.IsZero() {
							applied = s.AppliedAt.UTC().Format(time.RFC3339)
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
					}
					return tw.Flush()
				}),
			},
		},
	}
}

// withProvider opens DATABASE_URL through database/sql, builds a goose
// provider over the embedded migrations, and closes both after action runs.
func withProvider(action func(*cli.Context, *goose.Provider) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("create goose provider: %w", err)
		}
		defer p.Close()

		return action(c, p)
	}
}

func outboxCommand() *cli.Command {
	return &cli.Command{
		Name:  "outbox",
		Usage: "Inspect queued notifications.",
		Subcommands: []*cli.Command{
			{
				Name:  "pending",
				Usage: "Print the number of queued messages.",
				Action: withOutbox(func(c *cli.Context, o *notify.Outbox) error {
					n, err := o.Pending(c.Context)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, n)
					return nil
				}),
			},
			{
				Name:  "peek",
				Usage: "Print the oldest queued messages as JSON lines without removing them.",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "limit", Aliases: []string{"n"}, Value: 10, Usage: "Maximum number of messages to print."},
				},
				Action: withOutbox(func(c *cli.Context, o *notify.Outbox) error {
					msgs, err := o.Peek(c.Context, c.Int64("limit"))
					if err != nil {
						return err
					}
					enc := json.NewEncoder(c.App.Writer)
					for _, m := range msgs {
						if err := enc.Encode(m); err != nil {
							return err
						}
					}
					return nil
				}),
			},
		},
	}
}

// withOutbox connects to REDIS_URL and hands the configured outbox to action.
func withOutbox(action func(*cli.Context, *notify.Outbox) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.RedisURL == "" {
			return errors.New("REDIS_URL is not set; notifications are only being logged")
		}

		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(c.Context, 10*time.Second)
		defer cancel()
		c.Context = ctx

		log := slog.New(slog.NewTextHandler(c.App.ErrWriter, nil))
		return action(c, notify.NewOutbox(rdb, cfg.NotifyQueueKey, cfg.MailFrom, log))
	}
}
