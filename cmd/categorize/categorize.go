// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"finbot/core/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction",
	Long: `Categorize a transaction by its description. Keyword rules are tried
first; with --ai a Gemini fallback handles descriptions no rule matches.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "0", "Transaction amount")
	Cmd.Flags().BoolVar(&root.UseAI, "ai", false, "Allow the AI fallback for unmatched descriptions")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(root.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", root.Amount, err)
	}

	result := root.App.Resolver().Resolve(cmd.Context(), root.Description, amount, root.UseAI)

	root.Log.WithField("source", result.Source).Debug("Transaction categorized")
	fmt.Printf("Category: %s (source: %s)\n", result.CategoryID, result.Source)
	return nil
}
