package categorizer

import (
	"context"

	"finbot/core/internal/models"
)

// Strategy defines one method of assigning a category to a transaction.
// Strategies are tried in order by the Resolver; a miss is not an error.
type Strategy interface {
	// Categorize attempts to categorize a transaction using this strategy.
	// It returns the catalog id, a boolean indicating whether the strategy
	// produced a match, and any error encountered. Strategies recover from
	// expected failures internally and report them as a miss.
	Categorize(ctx context.Context, tx models.Transaction) (string, bool, error)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}

var (
	_ Strategy = (*KeywordStrategy)(nil)
	_ Strategy = (*AIStrategy)(nil)
)
