package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process settings read from the environment (and an optional .env file).
type Config struct {
	LogLevel  string `env:"UPGRADESIM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"UPGRADESIM_LOG_FORMAT" envDefault:"console"`
	HTTPAddr  string `env:"UPGRADESIM_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr  string `env:"UPGRADESIM_GRPC_ADDR" envDefault:":9090"`
	MaxTrials int    `env:"UPGRADESIM_MAX_TRIALS" envDefault:"10000000"`
}

// Load reads .env if present, then the environment, and validates the result.
func Load() (*Config, error) {
	// a missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks semantic constraints of a Config.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, "UPGRADESIM_LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, "UPGRADESIM_LOG_FORMAT must be json or console")
	}
	if c.HTTPAddr == "" {
		errs = append(errs, "UPGRADESIM_HTTP_ADDR must not be empty")
	}
	if c.GRPCAddr == "" {
		errs = append(errs, "UPGRADESIM_GRPC_ADDR must not be empty")
	}
	if c.MaxTrials <= 0 {
		errs = append(errs, "UPGRADESIM_MAX_TRIALS must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
