// Package config defines the process configuration for the dateminder worker.
// Configuration is loaded once at startup and is immutable thereafter,
// following 12-Factor principles: everything comes from the environment (with
// an optional .env file for local development), and any missing required
// value fails the run immediately.
package config

import (
	"log/slog"
	"strings"
	"time"

	"dateminder/internal/types"
)

// SecretString is an alias for types.SecretString, the redacted secret type
// used for credentials so they never reach logs or serialized output.
type SecretString = types.SecretString

// Config is the top-level configuration for the worker. Sub-components
// receive only the fields they need, never the whole struct.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// IsTestMode substitutes a logging stub for the email provider so a run
	// can be rehearsed against real store data without sending anything.
	IsTestMode bool `envconfig:"IS_TEST_MODE" default:"false"`

	// Document store access.
	GoogleProjectID string `envconfig:"GOOGLE_PROJECT_ID" validate:"required"`
	// GoogleCredentialsJSON is the service-account key. When empty, the
	// client falls back to Application Default Credentials.
	GoogleCredentialsJSON SecretString `envconfig:"GOOGLE_CREDENTIALS_JSON"`

	// Email provider access. The private key is the only provider secret;
	// service, template and public identifiers live in the store.
	EmailJSPrivateKey SecretString `envconfig:"EMAILJS_PRIVATE_KEY" validate:"required"`
	EmailJSBaseURL    string       `envconfig:"EMAILJS_BASE_URL" validate:"omitempty,url"`

	// Job behavior.
	LookaheadDays int           `envconfig:"LOOKAHEAD_DAYS" default:"7" validate:"min=0"`
	SendDelay     time.Duration `envconfig:"SEND_DELAY" default:"1100ms" validate:"min=0"`
	ScopeMode     string        `envconfig:"SCOPE_MODE" default:"owner_scoped" validate:"oneof=owner_scoped broadcast"`
}

// AlertScope returns the configured scope as its domain type.
func (c *Config) AlertScope() types.ScopeMode {
	return types.ScopeMode(c.ScopeMode)
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
