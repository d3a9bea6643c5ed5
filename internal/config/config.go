// Package config loads the command settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/EinfachAndy/fivewords"
)

// ErrInvalidConfig signals a setting out of its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by the commands. Flags override the
// values read from the environment.
type Config struct {
	GroupSize int    `env:"FIVEWORDS_GROUP_SIZE" env-default:"5" env-description:"number of words per group"`
	Workers   int    `env:"FIVEWORDS_WORKERS" env-default:"1" env-description:"goroutines building each level"`
	Sorted    bool   `env:"FIVEWORDS_SORTED" env-default:"false" env-description:"sort solution lines"`
	LogLevel  string `env:"FIVEWORDS_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat string `env:"FIVEWORDS_LOG_FORMAT" env-default:"console" env-description:"console or json"`
}

// Load reads the environment. The result is not validated, so that
// flags can still override it; call Validate once they are applied.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the ranges of the settings.
func (c *Config) Validate() error {
	if c.GroupSize < 1 || c.GroupSize > fivewords.MaxGroupSize {
		return fmt.Errorf("group size %d not in [1,%d]: %w", c.GroupSize, fivewords.MaxGroupSize, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, ErrInvalidConfig)
	}

	return nil
}

// Usage describes the environment variables, for flag.Usage.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}

	return text
}
