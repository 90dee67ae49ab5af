package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"paradereg/pkg/tz"
)

type Config struct {
	Locale    string
	LogLevel  string
	LogFormat string
	Timezone  string
	Seed      bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Locale:    os.Getenv("LOCALE"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		Timezone:  os.Getenv("TIMEZONE"),
		Seed:      true,
	}

	if raw := strings.TrimSpace(os.Getenv("SEED")); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("config: SEED must be a boolean (%q): %w", raw, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and rejects values the application cannot use.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "es"
	}

	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = zerolog.LevelInfoValue
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("config: LOG_LEVEL invalid (%q): %w", c.LogLevel, err)
	}

	switch c.LogFormat {
	case "":
		c.LogFormat = "console"
	case "console", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}

	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = tz.Default
	}
	if _, err := tz.Load(c.Timezone); err != nil {
		return fmt.Errorf("config: TIMEZONE invalid: %w", err)
	}

	return nil
}
