package bankimport

import (
	"context"
	"fmt"

	"finbot/core/internal/categorizer"
	"finbot/core/internal/logging"
	"finbot/core/internal/models"
)

// Importer runs the full CSV import pipeline: parse, filter duplicates,
// categorize, convert to transactions.
type Importer struct {
	parser   *Parser
	resolver *categorizer.Resolver
	filter   DuplicateFilter
	logger   logging.Logger
}

// NewImporter creates an Importer. The resolver is required; the filter
// carries its own defaults.
func NewImporter(resolver *categorizer.Resolver, filter DuplicateFilter, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{
		parser:   NewParser(logger),
		resolver: resolver,
		filter:   filter,
		logger:   logger,
	}
}

// ImportResult summarizes one import run.
type ImportResult struct {
	// Transactions are the imported, categorized transactions in file order.
	Transactions []models.Transaction

	// Imported is len(Transactions).
	Imported int

	// DuplicatesSkipped counts rows dropped by the duplicate filter.
	DuplicatesSkipped int

	// ParseErrors counts CSV lines that could not be parsed.
	ParseErrors int
}

// Import parses content with the named bank format ("" means auto-detect),
// drops rows that duplicate existing transactions, and categorizes the rest.
// Rows imported earlier in the same file also count as existing, so a file
// containing the same booking twice yields it once.
func (i *Importer) Import(ctx context.Context, content []byte, formatID string, existing []models.Transaction, allowAI bool) (ImportResult, error) {
	var format BankFormat
	if formatID == "" {
		format = DetectFormat(content)
		i.logger.WithField("format", format.ID).Info("Auto-detected bank format")
	} else {
		var ok bool
		format, ok = FormatByID(formatID)
		if !ok {
			return ImportResult{}, fmt.Errorf("unknown bank format %q", formatID)
		}
	}

	parsed, err := i.parser.Parse(content, format)
	if err != nil {
		return ImportResult{}, err
	}

	known := make([]models.Transaction, len(existing), len(existing)+len(parsed.Rows))
	copy(known, existing)

	result := ImportResult{ParseErrors: parsed.SkippedLines}
	for _, row := range parsed.Rows {
		if i.filter.IsDuplicate(row, known) {
			result.DuplicatesSkipped++
			continue
		}

		categoryID := ""
		if i.resolver != nil {
			categoryID = i.resolver.Resolve(ctx, row.Description, row.Amount, allowAI).CategoryID
		}

		tx := row.Transaction(categoryID)
		result.Transactions = append(result.Transactions, tx)
		known = append(known, tx)
	}
	result.Imported = len(result.Transactions)

	i.logger.WithFields(
		logging.Field{Key: "imported", Value: result.Imported},
		logging.Field{Key: "duplicates", Value: result.DuplicatesSkipped},
		logging.Field{Key: "parse_errors", Value: result.ParseErrors},
	).Info("CSV import finished")

	return result, nil
}
