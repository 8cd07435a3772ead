// Package recurrence flags transactions that look like recurring payments or
// subscriptions. A known-brand fast path catches normalized merchant strings
// immediately; a statistical fallback compares the transaction against the
// user's recent history with an amount tolerance and a token-set similarity
// threshold. The result is always a suggestion for the user to confirm.
package recurrence

import (
	"strings"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
)

// Confidence levels reported by the detector. Callers typically only act on
// candidates above their own threshold (the usual policy is > 0.7, so only
// brand matches trigger automatic suggestions).
const (
	ConfidenceBrandMatch = 0.95
	ConfidencePattern    = 0.7
)

// genericIcon is used for statistically detected patterns that have no brand
// entry.
const genericIcon = "💳"

// Options holds the detector's tuning parameters. The defaults carry over
// observed values; they are configurable because none of them has a
// principled derivation.
type Options struct {
	// AmountTolerance is the maximum absolute difference between the
	// candidate amount and a history entry for the pair to count as a match.
	AmountTolerance decimal.Decimal

	// SimilarityThreshold is the minimum (exclusive) Jaccard similarity
	// between descriptions for a pair to count as a match.
	SimilarityThreshold float64

	// MinMatches is the number of matching history entries required before a
	// pattern is reported. Requiring at least two prevents one coincidental
	// pair from being flagged.
	MinMatches int
}

// DefaultOptions returns the standard detector tuning.
func DefaultOptions() Options {
	return Options{
		AmountTolerance:     decimal.NewFromFloat(0.50),
		SimilarityThreshold: 0.6,
		MinMatches:          2,
	}
}

// Detector flags recurring payments.
type Detector struct {
	brands []models.SubscriptionBrand
	opts   Options
	logger logging.Logger
}

// NewDetector creates a Detector with the given brand table and options.
func NewDetector(brands []models.SubscriptionBrand, opts Options, logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.MinMatches < 1 {
		opts.MinMatches = DefaultOptions().MinMatches
	}
	return &Detector{
		brands: brands,
		opts:   opts,
		logger: logger,
	}
}

// Detect decides whether the transaction looks like a subscription. history
// is the caller-supplied window of the user's prior transactions; the
// detector issues no queries of its own. Detect is a pure function of its
// inputs and never fails.
func (d *Detector) Detect(description string, amount decimal.Decimal, history []models.Transaction) models.SubscriptionCandidate {
	// Fast path: known subscription brands match regardless of history.
	if candidate, ok := d.matchBrand(description, amount); ok {
		return candidate
	}

	// Statistical path: enough similar prior payments of nearly the same
	// amount indicate a recurring pattern.
	matches := 0
	for _, prior := range history {
		if amount.Sub(prior.Amount).Abs().Cmp(d.opts.AmountTolerance) >= 0 {
			continue
		}
		if Jaccard(description, prior.Description) <= d.opts.SimilarityThreshold {
			continue
		}
		matches++
	}

	if matches >= d.opts.MinMatches {
		d.logger.WithFields(
			logging.Field{Key: "description", Value: description},
			logging.Field{Key: "matches", Value: matches},
		).Debug("Recurring payment pattern detected")

		return models.SubscriptionCandidate{
			IsSubscription: true,
			Name:           description,
			Icon:           genericIcon,
			Amount:         amount,
			Confidence:     ConfidencePattern,
			AutoDetected:   true,
		}
	}

	return models.SubscriptionCandidate{
		Amount:     amount,
		Confidence: 0.0,
	}
}

// matchBrand checks the description against the known-subscription table.
func (d *Detector) matchBrand(description string, amount decimal.Decimal) (models.SubscriptionCandidate, bool) {
	descriptionLower := strings.ToLower(description)

	for _, brand := range d.brands {
		if strings.Contains(descriptionLower, strings.ToLower(brand.Keyword)) {
			d.logger.WithFields(
				logging.Field{Key: "description", Value: description},
				logging.Field{Key: "brand", Value: brand.Name},
			).Debug("Known subscription brand matched")

			return models.SubscriptionCandidate{
				IsSubscription: true,
				Name:           brand.Name,
				Icon:           brand.Icon,
				Amount:         amount,
				Confidence:     ConfidenceBrandMatch,
				AutoDetected:   true,
			}, true
		}
	}

	return models.SubscriptionCandidate{}, false
}
