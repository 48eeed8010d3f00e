// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime option. Values come from OSIRIS_* variables,
// optionally set through a .env file, and may be overridden by flags.
type Config struct {
	SavePath string `env:"OSIRIS_SAVE_PATH" envDefault:"savegame.txt"`

	// Seed for random events. 0 means a time-based seed.
	Seed int64 `env:"OSIRIS_SEED" envDefault:"0"`

	TextDelay time.Duration `env:"OSIRIS_TEXT_DELAY" envDefault:"30ms"`
	BeatDelay time.Duration `env:"OSIRIS_BEAT_DELAY" envDefault:"800ms"`

	// Plain selects the line console instead of the full-screen one.
	Plain bool `env:"OSIRIS_PLAIN" envDefault:"false"`

	LogPath     string `env:"OSIRIS_LOG_PATH" envDefault:"osiris.log"`
	LogLevel    string `env:"OSIRIS_LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"OSIRIS_LOG_ENCODING" envDefault:"json"`

	Telemetry        bool   `env:"OSIRIS_TELEMETRY" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_OSIRIS_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_OSIRIS_DATASET" envDefault:"osiris"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
