// Package config loads command line defaults from PATHABS_* environment
// variables. Flags override everything loaded here.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/roach88/pathabs/internal/logging"
)

// Prefix is prepended to every variable name, e.g. PATHABS_FORMAT.
const Prefix = "PATHABS"

// Config holds all application configuration.
type Config struct {
	Format   string `envconfig:"FORMAT" default:"text"`
	DB       string `envconfig:"DB" default:"pathabs.db"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	log := logging.DefaultConfig()
	return &Config{
		Format:   "text",
		DB:       "pathabs.db",
		LogLevel: log.Level,
		LogDev:   log.Development,
	}
}

// LoggerConfig returns the logger settings held in c.
func (c *Config) LoggerConfig() logging.Config {
	return logging.Config{
		Level:       c.LogLevel,
		Development: c.LogDev,
	}
}
