// Package insights derives simple spending statistics from the user's
// transaction history.
package insights

import (
	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
)

// BudgetSuggestion is a proposed monthly budget for one category.
type BudgetSuggestion struct {
	CategoryID string          `json:"category_id"`
	Suggested  decimal.Decimal `json:"suggested"`
	Average    decimal.Decimal `json:"average"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	Confidence float64         `json:"confidence"`
	Basis      int             `json:"basis"`
}

// budgetBuffer is the headroom added on top of the historical average.
var budgetBuffer = decimal.NewFromFloat(1.1)

// SuggestBudget proposes a budget for the category: the average expense plus
// a 10% buffer, rounded to cents. Confidence grows with the number of
// observations and saturates at ten. Income transactions and other categories
// are ignored; with no observations the second return value is false.
func SuggestBudget(categoryID string, history []models.Transaction) (BudgetSuggestion, bool) {
	var (
		sum      decimal.Decimal
		min, max decimal.Decimal
		count    int
	)

	for _, tx := range history {
		if tx.CategoryID != categoryID || tx.Type != models.TypeExpense {
			continue
		}
		amount := tx.Amount.Abs()
		sum = sum.Add(amount)
		if count == 0 || amount.LessThan(min) {
			min = amount
		}
		if count == 0 || amount.GreaterThan(max) {
			max = amount
		}
		count++
	}

	if count == 0 {
		return BudgetSuggestion{}, false
	}

	average := sum.Div(decimal.NewFromInt(int64(count)))
	confidence := float64(count) / 10.0
	if confidence > 1.0 {
		confidence = 1.0
	}

	return BudgetSuggestion{
		CategoryID: categoryID,
		Suggested:  average.Mul(budgetBuffer).Round(2),
		Average:    average.Round(2),
		Min:        min,
		Max:        max,
		Confidence: confidence,
		Basis:      count,
	}, true
}
