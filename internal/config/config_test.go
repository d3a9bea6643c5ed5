package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EinfachAndy/fivewords/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, &config.Config{
		GroupSize: 5,
		Workers:   1,
		Sorted:    false,
		LogLevel:  "info",
		LogFormat: "console",
	}, cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("FIVEWORDS_GROUP_SIZE", "3")
	t.Setenv("FIVEWORDS_WORKERS", "4")
	t.Setenv("FIVEWORDS_SORTED", "true")
	t.Setenv("FIVEWORDS_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.GroupSize)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Sorted)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFlagOverridesInvalidEnv(t *testing.T) {
	t.Setenv("FIVEWORDS_GROUP_SIZE", "6")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	// as done by -size 5
	cfg.GroupSize = 5
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := config.Config{GroupSize: 5, Workers: 1, LogLevel: "info", LogFormat: "console"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{"zero group size", func(c *config.Config) { c.GroupSize = 0 }},
		{"group size above alphabet", func(c *config.Config) { c.GroupSize = 6 }},
		{"no workers", func(c *config.Config) { c.Workers = 0 }},
		{"unknown log format", func(c *config.Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestUsage(t *testing.T) {
	assert.Contains(t, config.Usage(), "FIVEWORDS_WORKERS")
}
