// Package config loads host configuration from environment variables.
// Gameplay policy values are compiled constants; only host tuning and
// diagnostics live here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/the-ray/constants"
)

// Config is the environment-driven host configuration.
type Config struct {
	// Seed fixes the spawn RNG; 0 seeds from the current time.
	Seed int64 `env:"RAY_SEED"`

	// TickInterval overrides the movement tick period.
	TickInterval time.Duration `env:"RAY_TICK_INTERVAL"`

	// DebugLog, when set, appends diagnostic output to this file.
	// A TUI owns stdout, so logs never go to the screen.
	DebugLog string `env:"RAY_DEBUG_LOG"`
}

// Load parses the environment on top of defaults.
func Load() (Config, error) {
	cfg := Config{
		TickInterval: constants.MovementTickInterval,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.MovementTickInterval
	}
	return cfg, nil
}
