package main

import (
	"fmt"
	"os"
	"path/filepath"

	"finbot/core/cmd/banks"
	"finbot/core/cmd/budget"
	"finbot/core/cmd/categorize"
	"finbot/core/cmd/detect"
	"finbot/core/cmd/importcsv"
	"finbot/core/cmd/root"
	"finbot/core/cmd/template"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables silently before any logging is configured
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(importcsv.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(banks.Cmd)
	root.Cmd.AddCommand(template.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
