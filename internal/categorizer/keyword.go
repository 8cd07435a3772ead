package categorizer

import (
	"context"
	"strings"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"
)

// KeywordStrategy categorizes transactions by scanning the ordered category
// catalog for keyword substring matches. It is the cheap first step before
// any AI call.
type KeywordStrategy struct {
	catalog []models.Category
	logger  logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the given catalog. The
// catalog slice order is preserved: the first matching category wins.
func NewKeywordStrategy(catalog []models.Category, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{
		catalog: catalog,
		logger:  logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Categorize matches the lower-cased description against each category's
// keyword list in catalog order.
func (s *KeywordStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	description := strings.ToLower(tx.Description)
	if strings.TrimSpace(description) == "" {
		return "", false, nil
	}

	for _, category := range s.catalog {
		for _, keyword := range category.Keywords {
			if strings.Contains(description, strings.ToLower(keyword)) {
				s.logger.WithFields(
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: "description", Value: tx.Description},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: category.ID},
				).Debug("Transaction categorized by keyword rule")
				return category.ID, true, nil
			}
		}
	}

	return "", false, nil
}
