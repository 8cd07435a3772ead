package bankimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Template renders an example CSV in the given bank's layout: its header
// names, delimiter and date format, with three sample bookings. Users
// download it to see what their export should look like.
func Template(format BankFormat) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = format.Delimiter

	header := []string{format.DateColumn, format.AmountColumn, format.DescriptionColumn}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write template header: %w", err)
	}

	samples := []struct {
		date        time.Time
		amount      string
		description string
	}{
		{time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), "-25.50", "REWE Sagt Danke"},
		{time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC), "-15.99", "Amazon EU S.a.r.L"},
		{time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), "1500.00", "Salary Transfer"},
	}

	for _, sample := range samples {
		record := []string{
			sample.date.Format(format.DateFormat),
			sample.amount,
			sample.description,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write template row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
