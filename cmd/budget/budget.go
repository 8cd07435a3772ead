// Package budget suggests category budgets from the transaction history
package budget

import (
	"fmt"

	"finbot/core/cmd/root"
	"finbot/core/internal/insights"

	"github.com/spf13/cobra"
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Suggest a monthly budget for a category",
	Long: `Suggest a monthly budget for a category: the average historical expense
plus a 10% buffer. Confidence grows with the number of observations.`,
	RunE: budgetFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.CategoryID, "category", "c", "", "Category id")
	Cmd.Flags().StringVar(&root.HistoryFile, "history", "", "JSON file with prior transactions")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("history")
}

func budgetFunc(cmd *cobra.Command, args []string) error {
	history, err := root.LoadHistory(root.HistoryFile)
	if err != nil {
		return err
	}

	suggestion, ok := insights.SuggestBudget(root.CategoryID, history)
	if !ok {
		fmt.Printf("No expenses found for category %q\n", root.CategoryID)
		return nil
	}

	fmt.Printf("Suggested:  %s\n", suggestion.Suggested.StringFixed(2))
	fmt.Printf("Average:    %s\n", suggestion.Average.StringFixed(2))
	fmt.Printf("Range:      %s - %s\n", suggestion.Min.StringFixed(2), suggestion.Max.StringFixed(2))
	fmt.Printf("Confidence: %.1f (%d transactions)\n", suggestion.Confidence, suggestion.Basis)
	return nil
}
