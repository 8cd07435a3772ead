package insights

import (
	"testing"

	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(categoryID string, amount float64) models.Transaction {
	return models.Transaction{
		Description: "test",
		Amount:      decimal.NewFromFloat(amount),
		Type:        models.TypeExpense,
		CategoryID:  categoryID,
	}
}

func TestSuggestBudget(t *testing.T) {
	history := []models.Transaction{
		expense("food", 100.00),
		expense("food", 200.00),
		expense("food", 300.00),
		expense("transport", 50.00),
		{
			Description: "refund",
			Amount:      decimal.NewFromFloat(20.00),
			Type:        models.TypeIncome,
			CategoryID:  "food",
		},
	}

	suggestion, ok := SuggestBudget("food", history)

	require.True(t, ok)
	assert.Equal(t, "food", suggestion.CategoryID)
	assert.Equal(t, 3, suggestion.Basis, "income and other categories are ignored")
	assert.True(t, suggestion.Average.Equal(decimal.NewFromInt(200)), "average was %s", suggestion.Average)
	// Average 200 plus a 10% buffer.
	assert.True(t, suggestion.Suggested.Equal(decimal.NewFromInt(220)), "suggested was %s", suggestion.Suggested)
	assert.True(t, suggestion.Min.Equal(decimal.NewFromInt(100)))
	assert.True(t, suggestion.Max.Equal(decimal.NewFromInt(300)))
	assert.InDelta(t, 0.3, suggestion.Confidence, 1e-9)
}

func TestSuggestBudgetRounding(t *testing.T) {
	history := []models.Transaction{
		expense("food", 10.00),
		expense("food", 10.01),
		expense("food", 10.01),
	}

	suggestion, ok := SuggestBudget("food", history)

	require.True(t, ok)
	assert.Equal(t, 2, int(-suggestion.Suggested.Exponent()), "suggested is rounded to cents")
}

func TestSuggestBudgetConfidenceSaturates(t *testing.T) {
	history := make([]models.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		history = append(history, expense("food", 42.00))
	}

	suggestion, ok := SuggestBudget("food", history)

	require.True(t, ok)
	assert.Equal(t, 1.0, suggestion.Confidence)
	assert.Equal(t, 25, suggestion.Basis)
}

func TestSuggestBudgetNoData(t *testing.T) {
	_, ok := SuggestBudget("food", nil)
	assert.False(t, ok)

	_, ok = SuggestBudget("food", []models.Transaction{expense("transport", 10)})
	assert.False(t, ok)
}
