package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Categorization.DefaultCategory = "other"
	cfg.Recurrence.AmountTolerance = 0.50
	cfg.Recurrence.SimilarityThreshold = 0.6
	cfg.Recurrence.MinMatches = 2
	cfg.Import.DuplicatePrefixLen = 50
	cfg.Import.DuplicateAmountEpsilon = 0.01
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 15, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "other", cfg.Categorization.DefaultCategory)
	assert.Equal(t, 0.50, cfg.Recurrence.AmountTolerance)
	assert.Equal(t, 0.6, cfg.Recurrence.SimilarityThreshold)
	assert.Equal(t, 2, cfg.Recurrence.MinMatches)
	assert.Equal(t, 50, cfg.Import.DuplicatePrefixLen)
	assert.Equal(t, 0.01, cfg.Import.DuplicateAmountEpsilon)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("FINBOT_LOG_LEVEL", "debug")
	t.Setenv("FINBOT_RECURRENCE_MIN_MATCHES", "3")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Recurrence.MinMatches)
}

func TestInitializeConfigAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")
	t.Setenv("FINBOT_AI_ENABLED", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "test-key-123", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"ai enabled without key", func(c *Config) { c.AI.Enabled = true; c.AI.TimeoutSeconds = 15 }, "GEMINI_API_KEY required"},
		{"ai timeout out of range", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "key"
			c.AI.TimeoutSeconds = 0
		}, "ai.timeout_seconds"},
		{"empty default category", func(c *Config) { c.Categorization.DefaultCategory = "" }, "default_category"},
		{"negative tolerance", func(c *Config) { c.Recurrence.AmountTolerance = -1 }, "amount_tolerance"},
		{"similarity above one", func(c *Config) { c.Recurrence.SimilarityThreshold = 1.5 }, "similarity_threshold"},
		{"zero min matches", func(c *Config) { c.Recurrence.MinMatches = 0 }, "min_matches"},
		{"zero prefix len", func(c *Config) { c.Import.DuplicatePrefixLen = 0 }, "duplicate_prefix_len"},
		{"zero epsilon", func(c *Config) { c.Import.DuplicateAmountEpsilon = 0 }, "duplicate_amount_epsilon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)

	require.NotNil(t, logger)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
