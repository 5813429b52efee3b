// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// Config holds the server settings
type Config struct {
	GRPCPort        int           `env:"FABULA_GRPC_PORT" envDefault:"50051"`
	HTTPPort        int           `env:"FABULA_HTTP_PORT" envDefault:"8080"`
	RedisURL        string        `env:"REDIS_URL" envDefault:"localhost:6379"`
	RevisionsDB     string        `env:"FABULA_REVISIONS_DB" envDefault:"data/revisions.db"`
	DefaultLanguage string        `env:"FABULA_DEFAULT_LANGUAGE" envDefault:"en"`
	SessionTTL      time.Duration `env:"FABULA_SESSION_TTL" envDefault:"2h"`
	LogLevel        string        `env:"FABULA_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint    string        `env:"FABULA_OTEL_ENDPOINT"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("FABULA_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("FABULA_HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRequired("REDIS_URL", c.RedisURL, vb)
	errors.ValidateRequired("FABULA_REVISIONS_DB", c.RevisionsDB, vb)
	errors.ValidateRequired("FABULA_DEFAULT_LANGUAGE", c.DefaultLanguage, vb)
	if c.SessionTTL <= 0 {
		vb.Field("FABULA_SESSION_TTL", "must be positive")
	}
	errors.ValidateEnum("FABULA_LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	return vb.Build()
}

// SlogLevel converts LogLevel to a slog.Level
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
