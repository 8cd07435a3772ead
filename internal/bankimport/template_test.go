package bankimport

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateGeneric(t *testing.T) {
	content, err := Template(mustFormat(t, "generic"))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 4, "header plus three sample rows")
	assert.Equal(t, "date,amount,description", lines[0])
	assert.Contains(t, content, "REWE Sagt Danke")
	assert.Contains(t, content, "Salary Transfer")
}

func TestTemplateUsesBankLayout(t *testing.T) {
	content, err := Template(mustFormat(t, "deutsche_bank"))

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	assert.Equal(t, "Buchungstag;Betrag;Verwendungszweck", lines[0])
	assert.Contains(t, content, "15.01.2024", "dates use the bank's layout")
}

// Every template must parse under its own format.
func TestTemplateRoundTrips(t *testing.T) {
	importer := newTestImporter()

	for _, format := range Formats() {
		t.Run(format.ID, func(t *testing.T) {
			content, err := Template(format)
			require.NoError(t, err)

			result, err := importer.Import(context.Background(), []byte(content), format.ID, nil, false)
			require.NoError(t, err)
			assert.Equal(t, 3, result.Imported)
			assert.Equal(t, 0, result.ParseErrors)
		})
	}
}
