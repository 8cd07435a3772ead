package categorizer

import (
	"context"

	"finbot/core/internal/models"
)

// AIClient is the interface to an external text-completion service used for
// categorization. This abstraction keeps the core logic testable without
// network access and independent of the AI provider.
//
// Implementations receive the closed label vocabulary and must return the raw
// model reply; validating the reply against the vocabulary is the caller's
// job, because the model may answer with prose instead of a label.
type AIClient interface {
	Categorize(ctx context.Context, tx models.Transaction, labels []string) (string, error)
}
