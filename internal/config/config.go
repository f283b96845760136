// SPDX-License-Identifier: MIT

// Package config loads lvstats settings from LVSTATS_* environment
// variables. Command-line flags override these values.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvstats/elementwise"
	"github.com/katalvlaran/lvstats/internal/logging"
)

// Prefix is the environment variable prefix.
const Prefix = "LVSTATS"

// ErrInvalid reports a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all command-line configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
	Workers  int    `envconfig:"WORKERS" default:"1"`
	MinChunk int    `envconfig:"MIN_CHUNK" default:"4096"`
	Digits   int    `envconfig:"DIGITS" default:"10"`
	Precise  bool   `envconfig:"PRECISE" default:"false"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		LogDev:   false,
		Workers:  elementwise.DefaultWorkers,
		MinChunk: elementwise.DefaultMinChunk,
		Digits:   10,
		Precise:  false,
	}
}

// Validate checks every field's domain.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: WORKERS=%d, want >= 1", ErrInvalid, c.Workers)
	}
	if c.MinChunk < 1 {
		return fmt.Errorf("%w: MIN_CHUNK=%d, want >= 1", ErrInvalid, c.MinChunk)
	}
	if c.Digits < 1 || c.Digits > 17 {
		return fmt.Errorf("%w: DIGITS=%d, want 1..17", ErrInvalid, c.Digits)
	}
	return nil
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Development = c.LogDev
	return lc
}

// MapOptions returns the elementwise options for the configured parallelism.
func (c *Config) MapOptions() []elementwise.Option {
	return []elementwise.Option{
		elementwise.WithWorkers(c.Workers),
		elementwise.WithMinChunk(c.MinChunk),
	}
}
