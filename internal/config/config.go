// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the CLI and the daemon.
type Config struct {
	// OpenWeatherMap API key. Empty disables live weather; a fallback
	// token is used instead.
	WeatherAPIKey string `env:"OWM_API_KEY"`

	City   string `env:"EURODRAW_CITY" envDefault:"Paris"`
	Postal string `env:"EURODRAW_POSTAL" envDefault:"75001"`

	DBPath string `env:"EURODRAW_DB" envDefault:"data/eurodraw.db"`
	Trials int    `env:"EURODRAW_TRIALS" envDefault:"47"`

	// Daemon settings.
	Port     int    `env:"EURODRAW_PORT" envDefault:"8080"`
	AdminKey string `env:"EURODRAW_ADMIN_KEY"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Trials < 0 {
		return Config{}, fmt.Errorf("EURODRAW_TRIALS must be non-negative, got %d", cfg.Trials)
	}
	return cfg, nil
}
