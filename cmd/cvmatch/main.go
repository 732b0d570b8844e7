// Package main provides the entry point for the CV scoring service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logJSON  bool
	logDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "cvmatch",
	Short: "CV to job-description compatibility scoring service",
	Long: "cvmatch scores how well a CV matches a job description: TF-IDF similarity\n" +
		"with an optional remote semantic model, rule-based adjustment, confidence\n" +
		"estimation and bilingual (Turkish/English) explanations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logDebug, "debug", false, "Enable debug logging")
}
