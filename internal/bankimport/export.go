package bankimport

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/gocarina/gocsv"
)

// exportRow is the flat CSV representation of a Transaction. Dates are
// DD.MM.YYYY and amounts carry two decimals, matching what spreadsheet users
// expect.
type exportRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
}

// ExportCSV writes categorized transactions to a CSV file. The directory is
// created when missing.
func ExportCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]exportRow, 0, len(transactions))
	for _, tx := range transactions {
		amount := tx.Amount
		if tx.Type == models.TypeExpense {
			amount = amount.Neg()
		}
		rows = append(rows, exportRow{
			Date:        tx.Date.Format("02.01.2006"),
			Description: tx.Description,
			Amount:      amount.StringFixed(2),
			Type:        string(tx.Type),
			Category:    tx.CategoryID,
		})
	}

	csvWriter := csv.NewWriter(file)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}
