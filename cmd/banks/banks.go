// Package banks lists the supported bank CSV formats
package banks

import (
	"fmt"

	"finbot/core/internal/bankimport"

	"github.com/spf13/cobra"
)

// Cmd represents the banks command
var Cmd = &cobra.Command{
	Use:   "banks",
	Short: "List the supported bank CSV formats",
	Run:   banksFunc,
}

func banksFunc(cmd *cobra.Command, args []string) {
	fmt.Printf("%-15s %-15s %-10s %s\n", "ID", "BANK", "ENCODING", "COLUMNS")
	for _, format := range bankimport.Formats() {
		fmt.Printf("%-15s %-15s %-10s %s / %s / %s\n",
			format.ID, format.Name, format.Encoding,
			format.DateColumn, format.AmountColumn, format.DescriptionColumn)
	}
}
