// Package categorizer assigns a category to transactions using two methods:
// 1. Keyword rules from the ordered category catalog (cheap, first)
// 2. AI-based categorization through an external completion service (fallback)
// When both miss, the transaction falls into the default category. Resolve is
// total: it always returns a valid catalog id and never returns an error.
package categorizer

import (
	"context"
	"time"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
)

// Options holds the resolver's tuning parameters.
type Options struct {
	// DefaultCategoryID is returned when no strategy matches. It must exist
	// in the catalog.
	DefaultCategoryID string

	// AITimeout bounds the outbound AI call so a hanging request cannot
	// stall a batch import. Zero means no additional bound beyond the
	// caller's context.
	AITimeout time.Duration
}

// Resolver orchestrates the categorization strategies.
type Resolver struct {
	catalog  []models.Category
	keyword  *KeywordStrategy
	ai       *AIStrategy
	opts     Options
	logger   logging.Logger
	validIDs map[string]struct{}
}

// NewResolver creates a Resolver over the given catalog. aiClient may be nil,
// in which case the AI fallback is a no-op and misses resolve to the default
// category.
func NewResolver(catalog []models.Category, aiClient AIClient, opts Options, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.DefaultCategoryID == "" {
		opts.DefaultCategoryID = models.DefaultCategoryID
	}

	labels := make([]string, 0, len(catalog))
	validIDs := make(map[string]struct{}, len(catalog))
	for _, category := range catalog {
		labels = append(labels, category.ID)
		validIDs[category.ID] = struct{}{}
	}

	return &Resolver{
		catalog:  catalog,
		keyword:  NewKeywordStrategy(catalog, logger),
		ai:       NewAIStrategy(aiClient, labels, logger),
		opts:     opts,
		logger:   logger,
		validIDs: validIDs,
	}
}

// Catalog returns the resolver's category catalog in rule order.
func (r *Resolver) Catalog() []models.Category {
	return r.catalog
}

// Resolve assigns a category to a transaction described by description and
// amount. allowAI gates the AI fallback (free-tier policy): when false, a
// keyword miss resolves straight to the default category.
//
// Resolve never fails. AI errors, timeouts and garbage replies all degrade to
// the default category.
func (r *Resolver) Resolve(ctx context.Context, description string, amount decimal.Decimal, allowAI bool) models.CategorizationResult {
	tx := models.Transaction{
		Description: description,
		Amount:      amount,
	}

	// Step 1: keyword rules, catalog order, first match wins.
	if id, found, _ := r.keyword.Categorize(ctx, tx); found {
		return models.CategorizationResult{CategoryID: id, Source: models.SourceRule}
	}

	// Step 2: AI fallback, bounded by the configured timeout.
	if allowAI {
		aiCtx := ctx
		if r.opts.AITimeout > 0 {
			var cancel context.CancelFunc
			aiCtx, cancel = context.WithTimeout(ctx, r.opts.AITimeout)
			defer cancel()
		}

		if id, found, _ := r.ai.Categorize(aiCtx, tx); found {
			if _, ok := r.validIDs[id]; ok {
				return models.CategorizationResult{CategoryID: id, Source: models.SourceAI}
			}
			// The strategy matched against its own label set, so this only
			// happens when catalog and labels diverge. Treat as a miss.
			r.logger.WithField("category", id).Warn("AI returned a label outside the catalog")
		}
	}

	// Step 3: default category.
	return models.CategorizationResult{
		CategoryID: r.opts.DefaultCategoryID,
		Source:     models.SourceDefault,
	}
}
