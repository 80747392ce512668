// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server and plannerctl.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// APIBaseURL prefixes the confirmation links placed in notifications.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// WebBaseURL is where confirmation endpoints redirect the browser.
	WebBaseURL string `env:"WEB_BASE_URL" envDefault:"http://localhost:5173"`

	// Timezone names the IANA zone used to bucket the itinerary into days.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	// Location is Timezone resolved by Load.
	Location *time.Location `env:"-"`

	// RedisURL points at the notification outbox. When empty, notifications
	// are only logged.
	RedisURL string `env:"REDIS_URL"`

	// NotifyQueueKey is the Redis list that receives outgoing messages.
	NotifyQueueKey string `env:"NOTIFY_QUEUE_KEY" envDefault:"planner:notifications"`

	// MailFrom is the sender address stamped on every outgoing message.
	MailFrom string `env:"MAIL_FROM" envDefault:"Planner Team <hello@planner.local>"`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment take precedence over it.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("config: TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// trimAll trims each entry and drops the empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
