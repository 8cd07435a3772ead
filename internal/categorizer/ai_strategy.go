package categorizer

import (
	"context"
	"strings"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"
)

// AIStrategy categorizes transactions through an external AI service. The
// model's reply is only accepted when it maps back into the closed label
// vocabulary; prose, apologies and invented categories are treated as a miss.
type AIStrategy struct {
	aiClient AIClient
	labels   []string
	logger   logging.Logger
}

// NewAIStrategy creates an AIStrategy over the given client and label set.
// A nil client is allowed and makes every call a miss.
func NewAIStrategy(aiClient AIClient, labels []string, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AIStrategy{
		aiClient: aiClient,
		labels:   labels,
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize asks the AI client for a label and sanitizes the reply. Any
// failure of the external call degrades to a miss; this strategy never
// propagates transport errors to the resolver.
func (s *AIStrategy) Categorize(ctx context.Context, tx models.Transaction) (string, bool, error) {
	if s.aiClient == nil {
		s.logger.WithField("strategy", s.Name()).Debug("AI client not available, skipping AI categorization")
		return "", false, nil
	}

	if strings.TrimSpace(tx.Description) == "" {
		return "", false, nil
	}

	reply, err := s.aiClient.Categorize(ctx, tx, s.labels)
	if err != nil {
		s.logger.WithError(err).WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "description", Value: tx.Description},
		).Warn("AI categorization failed")
		return "", false, nil
	}

	label, ok := s.matchLabel(reply)
	if !ok {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "description", Value: tx.Description},
			logging.Field{Key: "reply", Value: reply},
		).Debug("AI reply did not match any known label")
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "description", Value: tx.Description},
		logging.Field{Key: "category", Value: label},
	).Debug("Transaction categorized by AI")

	return label, true, nil
}

// matchLabel maps a raw model reply onto the label vocabulary. The reply is
// accepted when, after trimming and lower-casing, it equals a label exactly or
// contains a label as a substring (the model sometimes wraps the label in
// quotes or a short sentence). Anything else is rejected.
func (s *AIStrategy) matchLabel(reply string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	normalized = strings.Trim(normalized, `"'.`)
	if normalized == "" {
		return "", false
	}

	for _, label := range s.labels {
		if normalized == strings.ToLower(label) {
			return label, true
		}
	}

	for _, label := range s.labels {
		if strings.Contains(normalized, strings.ToLower(label)) {
			return label, true
		}
	}

	return "", false
}
