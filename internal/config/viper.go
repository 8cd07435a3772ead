// Package config provides Viper-based hierarchical configuration management
// for the categorization core: defaults, then an optional YAML config file,
// then FINBOT_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Categorization struct {
		DefaultCategory string `mapstructure:"default_category" yaml:"default_category"`
		AllowAI         bool   `mapstructure:"allow_ai" yaml:"allow_ai"`
	} `mapstructure:"categorization" yaml:"categorization"`

	// Recurrence tuning. The defaults come from observed behavior, not from a
	// principled derivation; they are exposed here so product can tune them.
	Recurrence struct {
		AmountTolerance     float64 `mapstructure:"amount_tolerance" yaml:"amount_tolerance"`
		SimilarityThreshold float64 `mapstructure:"similarity_threshold" yaml:"similarity_threshold"`
		MinMatches          int     `mapstructure:"min_matches" yaml:"min_matches"`
	} `mapstructure:"recurrence" yaml:"recurrence"`

	Import struct {
		DuplicatePrefixLen     int     `mapstructure:"duplicate_prefix_len" yaml:"duplicate_prefix_len"`
		DuplicateAmountEpsilon float64 `mapstructure:"duplicate_amount_epsilon" yaml:"duplicate_amount_epsilon"`
		HistoryMonths          int     `mapstructure:"history_months" yaml:"history_months"`
	} `mapstructure:"import" yaml:"import"`

	Catalog struct {
		CategoriesFile    string `mapstructure:"categories_file" yaml:"categories_file"`
		SubscriptionsFile string `mapstructure:"subscriptions_file" yaml:"subscriptions_file"`
	} `mapstructure:"catalog" yaml:"catalog"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finbot")
	v.AddConfigPath(".finbot")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINBOT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the environment, not prefixed
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// AI defaults
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 15)

	// Categorization defaults
	v.SetDefault("categorization.default_category", "other")
	v.SetDefault("categorization.allow_ai", true)

	// Recurrence defaults
	v.SetDefault("recurrence.amount_tolerance", 0.50)
	v.SetDefault("recurrence.similarity_threshold", 0.6)
	v.SetDefault("recurrence.min_matches", 2)

	// Import defaults
	v.SetDefault("import.duplicate_prefix_len", 50)
	v.SetDefault("import.duplicate_amount_epsilon", 0.01)
	v.SetDefault("import.history_months", 6)

	// Catalog defaults
	v.SetDefault("catalog.categories_file", "categories.yaml")
	v.SetDefault("catalog.subscriptions_file", "subscriptions.yaml")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	if config.Categorization.DefaultCategory == "" {
		return fmt.Errorf("categorization.default_category must not be empty")
	}

	if config.Recurrence.AmountTolerance < 0 {
		return fmt.Errorf("recurrence.amount_tolerance must be >= 0, got: %f", config.Recurrence.AmountTolerance)
	}
	if config.Recurrence.SimilarityThreshold < 0.0 || config.Recurrence.SimilarityThreshold > 1.0 {
		return fmt.Errorf("recurrence.similarity_threshold must be between 0.0 and 1.0, got: %f", config.Recurrence.SimilarityThreshold)
	}
	if config.Recurrence.MinMatches < 1 {
		return fmt.Errorf("recurrence.min_matches must be >= 1, got: %d", config.Recurrence.MinMatches)
	}

	if config.Import.DuplicatePrefixLen < 1 {
		return fmt.Errorf("import.duplicate_prefix_len must be >= 1, got: %d", config.Import.DuplicatePrefixLen)
	}
	if config.Import.DuplicateAmountEpsilon <= 0 {
		return fmt.Errorf("import.duplicate_amount_epsilon must be > 0, got: %f", config.Import.DuplicateAmountEpsilon)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
