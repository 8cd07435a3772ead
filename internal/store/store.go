// Package store loads the category catalog and the known-subscription brand
// table from YAML files, falling back to the builtin defaults when no file is
// present. The catalog order in the file is preserved: it is the tie-break
// for keyword rule matching.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"gopkg.in/yaml.v3"
)

// CatalogStore manages loading of category and subscription configuration.
type CatalogStore struct {
	CategoriesFile    string
	SubscriptionsFile string

	logger logging.Logger
}

// catalogFile is the on-disk structure of categories.yaml.
type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
}

// subscriptionsFile is the on-disk structure of subscriptions.yaml.
type subscriptionsFile struct {
	Subscriptions []models.SubscriptionBrand `yaml:"subscriptions"`
}

// NewCatalogStore creates a store reading the given files. Relative names are
// resolved against the standard config locations.
func NewCatalogStore(categoriesFile, subscriptionsFile string, logger logging.Logger) *CatalogStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CatalogStore{
		CategoriesFile:    categoriesFile,
		SubscriptionsFile: subscriptionsFile,
		logger:            logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CatalogStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Check in user's home directory under .config/finbot/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finbot", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the ordered category catalog. A missing file is not an
// error: the builtin catalog is returned so the resolver always has a valid
// category set to fall back on.
func (s *CatalogStore) LoadCategories() ([]models.Category, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", filename).Debug("Categories file not found, using builtin catalog")
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var cfg catalogFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(cfg.Categories) == 0 {
		s.logger.WithField("file", filePath).Warn("Categories file is empty, using builtin catalog")
		return DefaultCatalog(), nil
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(cfg.Categories)},
	).Debug("Loaded category catalog")
	return cfg.Categories, nil
}

// LoadSubscriptionBrands loads the known-subscription table used by the
// recurrence detector's fast path. Missing file falls back to the builtin
// brand table.
func (s *CatalogStore) LoadSubscriptionBrands() ([]models.SubscriptionBrand, error) {
	filename := s.SubscriptionsFile
	if filename == "" {
		filename = "subscriptions.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", filename).Debug("Subscriptions file not found, using builtin brand table")
			return DefaultSubscriptionBrands(), nil
		}
		return nil, fmt.Errorf("error resolving subscriptions file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading subscriptions file: %w", err)
	}

	var cfg subscriptionsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing subscriptions file: %w", err)
	}
	if len(cfg.Subscriptions) == 0 {
		s.logger.WithField("file", filePath).Warn("Subscriptions file is empty, using builtin brand table")
		return DefaultSubscriptionBrands(), nil
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: filePath},
		logging.Field{Key: "count", Value: len(cfg.Subscriptions)},
	).Debug("Loaded subscription brand table")
	return cfg.Subscriptions, nil
}
