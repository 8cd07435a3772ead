// Package bankimport parses bank CSV exports into transactions. Each
// supported bank is described by a table entry naming its columns, delimiter,
// encoding and date layout; adding a bank means adding a row, not code. The
// package also filters rows that duplicate already-imported transactions.
package bankimport

// BankFormat describes one bank's CSV export layout.
type BankFormat struct {
	// ID is the stable identifier used on the command line and in logs.
	ID string

	// Name is the human-readable bank name.
	Name string

	// Encoding is the character encoding of the export file. Supported
	// values are "utf-8" and "iso-8859-1"; German banks still ship Latin-1.
	Encoding string

	// Delimiter is the CSV field separator.
	Delimiter rune

	// DateColumn, AmountColumn and DescriptionColumn are the exact header
	// names of the three columns the importer reads. All other columns are
	// ignored.
	DateColumn        string
	AmountColumn      string
	DescriptionColumn string

	// DateFormat is the Go reference layout for the bank's date column.
	DateFormat string
}

// Formats returns the supported bank formats in presentation order. The
// generic format is last and doubles as the detection fallback.
func Formats() []BankFormat {
	return []BankFormat{
		{
			ID:                "deutsche_bank",
			Name:              "Deutsche Bank",
			Encoding:          "iso-8859-1",
			Delimiter:         ';',
			DateColumn:        "Buchungstag",
			AmountColumn:      "Betrag",
			DescriptionColumn: "Verwendungszweck",
			DateFormat:        "02.01.2006",
		},
		{
			ID:                "sparkasse",
			Name:              "Sparkasse",
			Encoding:          "iso-8859-1",
			Delimiter:         ';',
			DateColumn:        "Buchungstag",
			AmountColumn:      "Betrag",
			DescriptionColumn: "Verwendungszweck",
			DateFormat:        "02.01.06",
		},
		{
			ID:                "commerzbank",
			Name:              "Commerzbank",
			Encoding:          "iso-8859-1",
			Delimiter:         ';',
			DateColumn:        "Buchungstag",
			AmountColumn:      "Umsatz in EUR",
			DescriptionColumn: "Buchungstext",
			DateFormat:        "02.01.2006",
		},
		{
			ID:                "n26",
			Name:              "N26",
			Encoding:          "utf-8",
			Delimiter:         ',',
			DateColumn:        "Date",
			AmountColumn:      "Amount (EUR)",
			DescriptionColumn: "Payee",
			DateFormat:        "2006-01-02",
		},
		{
			ID:                "ing_diba",
			Name:              "ING-DiBa",
			Encoding:          "iso-8859-1",
			Delimiter:         ';',
			DateColumn:        "Buchung",
			AmountColumn:      "Betrag",
			DescriptionColumn: "Verwendungszweck",
			DateFormat:        "02.01.2006",
		},
		{
			ID:                "generic",
			Name:              "Generic CSV",
			Encoding:          "utf-8",
			Delimiter:         ',',
			DateColumn:        "date",
			AmountColumn:      "amount",
			DescriptionColumn: "description",
			DateFormat:        "2006-01-02",
		},
	}
}

// FormatByID looks up a bank format by its identifier.
func FormatByID(id string) (BankFormat, bool) {
	for _, format := range Formats() {
		if format.ID == id {
			return format, true
		}
	}
	return BankFormat{}, false
}
