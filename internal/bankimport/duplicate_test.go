package bankimport

import (
	"strings"
	"testing"
	"time"

	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDuplicate(t *testing.T) {
	filter := NewDuplicateFilter(50, decimal.NewFromFloat(0.01))

	existing := []models.Transaction{
		{
			Description: "REWE Sagt Danke Filiale 1234",
			Amount:      decimal.NewFromFloat(25.50),
			Type:        models.TypeExpense,
			Date:        day(2024, time.January, 15),
		},
	}

	tests := []struct {
		name string
		row  models.BankRow
		want bool
	}{
		{
			name: "exact repeat",
			row: models.BankRow{
				Description: "REWE Sagt Danke Filiale 1234",
				Amount:      decimal.NewFromFloat(25.50),
				Date:        day(2024, time.January, 15),
			},
			want: true,
		},
		{
			name: "different day",
			row: models.BankRow{
				Description: "REWE Sagt Danke Filiale 1234",
				Amount:      decimal.NewFromFloat(25.50),
				Date:        day(2024, time.January, 16),
			},
			want: false,
		},
		{
			name: "amount within epsilon",
			row: models.BankRow{
				Description: "REWE Sagt Danke Filiale 1234",
				Amount:      decimal.NewFromFloat(25.505),
				Date:        day(2024, time.January, 15),
			},
			want: true,
		},
		{
			name: "amount differs by exactly epsilon",
			row: models.BankRow{
				Description: "REWE Sagt Danke Filiale 1234",
				Amount:      decimal.NewFromFloat(25.51),
				Date:        day(2024, time.January, 15),
			},
			want: false,
		},
		{
			name: "different description",
			row: models.BankRow{
				Description: "EDEKA Center",
				Amount:      decimal.NewFromFloat(25.50),
				Date:        day(2024, time.January, 15),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.IsDuplicate(tt.row, existing))
		})
	}
}

func TestIsDuplicatePrefixComparison(t *testing.T) {
	filter := NewDuplicateFilter(50, decimal.NewFromFloat(0.01))

	base := strings.Repeat("x", 50)
	existing := []models.Transaction{
		{
			Description: base + " REF 111111",
			Amount:      decimal.NewFromFloat(10.00),
			Date:        day(2024, time.March, 1),
		},
	}

	// Same 50-char prefix, different trailing reference: duplicate.
	row := models.BankRow{
		Description: base + " REF 999999",
		Amount:      decimal.NewFromFloat(10.00),
		Date:        day(2024, time.March, 1),
	}
	assert.True(t, filter.IsDuplicate(row, existing))

	// Divergence inside the first 50 characters: not a duplicate.
	row.Description = strings.Repeat("x", 49) + "y REF 111111"
	assert.False(t, filter.IsDuplicate(row, existing))
}

func TestIsDuplicateUmlautPrefix(t *testing.T) {
	filter := NewDuplicateFilter(10, decimal.NewFromFloat(0.01))

	existing := []models.Transaction{
		{
			Description: "Bäckerei Müller Filiale West",
			Amount:      decimal.NewFromFloat(3.50),
			Date:        day(2024, time.May, 2),
		},
	}
	row := models.BankRow{
		Description: "Bäckerei Müller Filiale Ost",
		Amount:      decimal.NewFromFloat(3.50),
		Date:        day(2024, time.May, 2),
	}

	// First ten runes agree, so the rune-based prefix marks this a duplicate.
	assert.True(t, filter.IsDuplicate(row, existing))
}

func TestIsDuplicateEmptyHistory(t *testing.T) {
	filter := NewDuplicateFilter(50, decimal.NewFromFloat(0.01))
	row := models.BankRow{
		Description: "anything",
		Amount:      decimal.NewFromFloat(1.00),
		Date:        day(2024, time.January, 1),
	}

	assert.False(t, filter.IsDuplicate(row, nil))
}

func TestNewDuplicateFilterDefaults(t *testing.T) {
	filter := NewDuplicateFilter(0, decimal.Zero)

	assert.Equal(t, 50, filter.PrefixLen)
	assert.True(t, filter.AmountEpsilon.Equal(decimal.NewFromFloat(0.01)))
}
