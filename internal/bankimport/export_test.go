package bankimport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	transactions := []models.Transaction{
		{
			Description: "REWE Sagt Danke",
			Amount:      decimal.NewFromFloat(25.50),
			Type:        models.TypeExpense,
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			CategoryID:  models.CategoryFood,
		},
		{
			Description: "Gehalt ACME GmbH",
			Amount:      decimal.NewFromFloat(2500.00),
			Type:        models.TypeIncome,
			Date:        time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			CategoryID:  models.CategorySalary,
		},
	}

	outFile := filepath.Join(t.TempDir(), "out", "transactions.csv")
	err := ExportCSV(transactions, outFile, logging.NewMockLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Date,Description,Amount,Type,Category")
	assert.Contains(t, content, "15.01.2024,REWE Sagt Danke,-25.50,expense,food")
	assert.Contains(t, content, "31.01.2024,Gehalt ACME GmbH,2500.00,income,salary")
}

func TestExportCSVNilTransactions(t *testing.T) {
	err := ExportCSV(nil, filepath.Join(t.TempDir(), "out.csv"), logging.NewMockLogger())
	require.Error(t, err)
}
