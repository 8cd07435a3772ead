package bankimport

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// Parser turns a bank CSV export into rows according to a BankFormat.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a Parser.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger}
}

// ParseResult is the outcome of parsing one CSV file. Rows holds the
// successfully parsed lines; SkippedLines counts lines that could not be
// parsed (bad date, bad amount, missing fields) and were dropped.
type ParseResult struct {
	Rows         []models.BankRow
	SkippedLines int
}

// Parse reads the CSV content with the format's encoding, delimiter and
// column names. Lines that fail to parse are skipped and counted, not fatal;
// a missing header column is an error because it means the wrong format was
// chosen.
func (p *Parser) Parse(content []byte, format BankFormat) (ParseResult, error) {
	text, err := decodeContent(content, format.Encoding)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to decode CSV content: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = format.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return ParseResult{}, fmt.Errorf("CSV file is empty")
	}

	header := records[0]
	dateIdx, err := columnIndex(header, format.DateColumn)
	if err != nil {
		return ParseResult{}, err
	}
	amountIdx, err := columnIndex(header, format.AmountColumn)
	if err != nil {
		return ParseResult{}, err
	}
	descIdx, err := columnIndex(header, format.DescriptionColumn)
	if err != nil {
		return ParseResult{}, err
	}

	result := ParseResult{Rows: make([]models.BankRow, 0, len(records)-1)}
	for lineNo, record := range records[1:] {
		row, err := parseRow(record, dateIdx, amountIdx, descIdx, format.DateFormat)
		if err != nil {
			p.logger.WithError(err).WithField("line", lineNo+2).Debug("Skipping unparseable CSV line")
			result.SkippedLines++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	p.logger.WithFields(
		logging.Field{Key: "format", Value: format.ID},
		logging.Field{Key: "rows", Value: len(result.Rows)},
		logging.Field{Key: "skipped", Value: result.SkippedLines},
	).Info("Parsed bank CSV")

	return result, nil
}

func parseRow(record []string, dateIdx, amountIdx, descIdx int, dateFormat string) (models.BankRow, error) {
	maxIdx := dateIdx
	if amountIdx > maxIdx {
		maxIdx = amountIdx
	}
	if descIdx > maxIdx {
		maxIdx = descIdx
	}
	if len(record) <= maxIdx {
		return models.BankRow{}, fmt.Errorf("line has %d fields, need at least %d", len(record), maxIdx+1)
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(record[dateIdx]))
	if err != nil {
		return models.BankRow{}, fmt.Errorf("invalid date %q: %w", record[dateIdx], err)
	}

	amount, err := parseAmount(record[amountIdx])
	if err != nil {
		return models.BankRow{}, err
	}

	description := strings.TrimSpace(record[descIdx])
	if description == "" {
		return models.BankRow{}, fmt.Errorf("empty description")
	}

	row := models.BankRow{
		Date:        date,
		Description: description,
	}
	if amount.IsNegative() {
		row.Type = models.TypeExpense
		row.Amount = amount.Abs()
	} else {
		row.Type = models.TypeIncome
		row.Amount = amount
	}
	return row, nil
}

// parseAmount parses a CSV amount cell. German exports write "1.234,56";
// the comma is the decimal marker, so its presence selects the German
// normalization. Dot-decimal values pass through untouched.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "\u00a0", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.TrimSuffix(cleaned, "€")
	cleaned = strings.TrimSuffix(cleaned, "EUR")

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

// columnIndex finds a header column by name, ignoring surrounding whitespace
// and a UTF-8 BOM on the first column.
func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		col = strings.TrimPrefix(col, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in CSV header", name)
}

// decodeContent converts the raw file bytes to UTF-8 text.
func decodeContent(content []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return string(content), nil
	case "iso-8859-1", "latin1", "latin-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// DetectFormat guesses the bank format from the CSV header line. The first
// format in table order whose three expected columns all appear in the header
// wins; when none matches fully the generic format is returned.
func DetectFormat(content []byte) BankFormat {
	formats := Formats()
	generic := formats[len(formats)-1]

	for _, format := range formats {
		text, err := decodeContent(content, format.Encoding)
		if err != nil {
			continue
		}

		reader := csv.NewReader(strings.NewReader(text))
		reader.Comma = format.Delimiter
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		header, err := reader.Read()
		if err != nil {
			continue
		}

		if hasColumn(header, format.DateColumn) &&
			hasColumn(header, format.AmountColumn) &&
			hasColumn(header, format.DescriptionColumn) {
			return format
		}
	}

	return generic
}

func hasColumn(header []string, name string) bool {
	_, err := columnIndex(header, name)
	return err == nil
}
