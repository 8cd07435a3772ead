// Package detect handles subscription detection commands
package detect

import (
	"fmt"

	"finbot/core/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect whether a transaction is a recurring subscription",
	Long: `Detect whether a transaction looks like a recurring subscription, either
by matching a known brand or by finding similar payments in the history.`,
	RunE: detectFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "0", "Transaction amount")
	Cmd.Flags().StringVar(&root.HistoryFile, "history", "", "JSON file with prior transactions")
	_ = Cmd.MarkFlagRequired("description")
}

func detectFunc(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(root.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", root.Amount, err)
	}

	history, err := root.LoadHistory(root.HistoryFile)
	if err != nil {
		return err
	}

	candidate := root.App.Detector().Detect(root.Description, amount, history)
	if !candidate.IsSubscription {
		fmt.Println("No subscription pattern detected")
		return nil
	}

	fmt.Printf("%s %s (confidence %.2f)\n", candidate.Icon, candidate.Name, candidate.Confidence)
	return nil
}
