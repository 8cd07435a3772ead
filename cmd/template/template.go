// Package template renders example CSV files for the supported banks
package template

import (
	"fmt"
	"os"

	"finbot/core/cmd/root"
	"finbot/core/internal/bankimport"

	"github.com/spf13/cobra"
)

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Render an example CSV in a bank's format",
	Long: `Render an example CSV file showing the header names, delimiter and date
format a bank's export uses. Written to --output or printed to stdout.`,
	RunE: templateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.BankFormat, "bank", "b", "generic", "Bank format id")
}

func templateFunc(cmd *cobra.Command, args []string) error {
	format, ok := bankimport.FormatByID(root.BankFormat)
	if !ok {
		return fmt.Errorf("unknown bank format %q", root.BankFormat)
	}

	content, err := bankimport.Template(format)
	if err != nil {
		return err
	}

	if root.OutputFile != "" {
		if err := os.WriteFile(root.OutputFile, []byte(content), 0600); err != nil {
			return fmt.Errorf("error writing template file: %w", err)
		}
		fmt.Printf("Written to %s\n", root.OutputFile)
		return nil
	}

	fmt.Print(content)
	return nil
}
