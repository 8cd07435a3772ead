// Package root contains the root command for the application
package root

import (
	"encoding/json"
	"fmt"
	"os"

	"finbot/core/internal/config"
	"finbot/core/internal/container"
	"finbot/core/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// App is the dependency container, wired in PersistentPreRunE before any
	// command runs.
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finbot",
		Short: "A CLI tool to categorize bank transactions and import bank CSV exports.",
		Long: `finbot categorizes financial transactions with keyword rules and an
optional AI fallback, detects recurring subscriptions, and imports CSV
exports from common German banks.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finbot!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			App, err = container.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App != nil {
				if err := App.Close(); err != nil {
					Log.Warnf("Failed to close dependencies: %v", err)
				}
			}
		},
	}

	// Shared command flags
	Description string
	Amount      string
	HistoryFile string
	InputFile   string
	OutputFile  string
	BankFormat  string
	CategoryID  string
	UseAI       bool
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&OutputFile, "output", "o", "", "Output file")
}

// LoadHistory reads a transaction history JSON file. An empty path yields an
// empty history.
func LoadHistory(path string) ([]models.Transaction, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	var history []models.Transaction
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("error parsing history file: %w", err)
	}
	return history, nil
}
