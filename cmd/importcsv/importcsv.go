// Package importcsv handles bank CSV import commands
package importcsv

import (
	"fmt"
	"os"

	"finbot/core/cmd/root"
	"finbot/core/internal/bankimport"

	"github.com/spf13/cobra"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a bank CSV export",
	Long: `Import a bank CSV export, skip rows that duplicate known transactions,
and categorize the rest. The bank format is auto-detected from the CSV
header unless --bank names one explicitly.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputFile, "input", "i", "", "CSV file to import")
	Cmd.Flags().StringVarP(&root.BankFormat, "bank", "b", "", "Bank format id (default: auto-detect)")
	Cmd.Flags().StringVar(&root.HistoryFile, "history", "", "JSON file with existing transactions for duplicate filtering")
	Cmd.Flags().BoolVar(&root.UseAI, "ai", false, "Allow the AI fallback for unmatched descriptions")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(root.InputFile)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	existing, err := root.LoadHistory(root.HistoryFile)
	if err != nil {
		return err
	}

	result, err := root.App.Importer().Import(cmd.Context(), content, root.BankFormat, existing, root.UseAI)
	if err != nil {
		return err
	}

	fmt.Printf("Imported:   %d\n", result.Imported)
	fmt.Printf("Duplicates: %d\n", result.DuplicatesSkipped)
	fmt.Printf("Errors:     %d\n", result.ParseErrors)

	if root.OutputFile != "" {
		if err := bankimport.ExportCSV(result.Transactions, root.OutputFile, root.App.Logger()); err != nil {
			return err
		}
		fmt.Printf("Written to %s\n", root.OutputFile)
	}
	return nil
}
