// Package container provides dependency injection for the categorization
// core. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"finbot/core/internal/bankimport"
	"finbot/core/internal/categorizer"
	"finbot/core/internal/config"
	"finbot/core/internal/logging"
	"finbot/core/internal/recurrence"
	"finbot/core/internal/store"

	"github.com/shopspring/decimal"
)

// Container holds all application dependencies and provides methods to access
// them. It is immutable after creation: all fields are private and reachable
// only through getters.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    *store.CatalogStore
	aiClient categorizer.AIClient
	resolver *categorizer.Resolver
	detector *recurrence.Detector
	importer *bankimport.Importer
}

// New creates and wires all application dependencies from the configuration.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	catalogStore := store.NewCatalogStore(cfg.Catalog.CategoriesFile, cfg.Catalog.SubscriptionsFile, logger)

	catalog, err := catalogStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}
	brands, err := catalogStore.LoadSubscriptionBrands()
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription brands: %w", err)
	}

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
		aiClient = gemini
		logger.Info("AI categorization enabled")
	} else {
		logger.Info("AI categorization disabled")
	}

	resolver := categorizer.NewResolver(catalog, aiClient, categorizer.Options{
		DefaultCategoryID: cfg.Categorization.DefaultCategory,
		AITimeout:         time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, logger)

	detector := recurrence.NewDetector(brands, recurrence.Options{
		AmountTolerance:     decimal.NewFromFloat(cfg.Recurrence.AmountTolerance),
		SimilarityThreshold: cfg.Recurrence.SimilarityThreshold,
		MinMatches:          cfg.Recurrence.MinMatches,
	}, logger)

	filter := bankimport.NewDuplicateFilter(
		cfg.Import.DuplicatePrefixLen,
		decimal.NewFromFloat(cfg.Import.DuplicateAmountEpsilon),
	)
	importer := bankimport.NewImporter(resolver, filter, logger)

	return &Container{
		logger:   logger,
		config:   cfg,
		store:    catalogStore,
		aiClient: aiClient,
		resolver: resolver,
		detector: detector,
		importer: importer,
	}, nil
}

// Logger returns the configured logger.
func (c *Container) Logger() logging.Logger {
	return c.logger
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Store returns the catalog store.
func (c *Container) Store() *store.CatalogStore {
	return c.store
}

// Resolver returns the category resolver.
func (c *Container) Resolver() *categorizer.Resolver {
	return c.resolver
}

// Detector returns the recurrence detector.
func (c *Container) Detector() *recurrence.Detector {
	return c.detector
}

// Importer returns the bank CSV importer.
func (c *Container) Importer() *bankimport.Importer {
	return c.importer
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.aiClient.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
