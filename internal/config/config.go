// Package config loads server configuration from environment variables
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/heroforge/hero-api/internal/errors"
)

// Config holds the server's runtime configuration
type Config struct {
	// HTTPAddr is the listen address for the HTTP API
	HTTPAddr string `env:"HERO_API_HTTP_ADDR" envDefault:":8080"`

	// RedisAddr is the address of the character store
	RedisAddr string `env:"HERO_API_REDIS_ADDR" envDefault:"localhost:6379"`

	// CatalogPath is the SQLite database holding the game catalog
	CatalogPath string `env:"HERO_API_CATALOG_PATH" envDefault:"hero-catalog.db"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"HERO_API_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
