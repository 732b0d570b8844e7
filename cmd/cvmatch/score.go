package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/logger"
	"github.com/baauozar/cvmatch/internal/scoring"
)

var (
	scoreCVPath  string
	scoreJobPath string
	scoreCVText  string
	scoreJobText string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a CV against a job description once and print the result",
	Long:  `Run the scoring pipeline once over a CV and a job description, given as plain-text files or inline flags, and print the response JSON to stdout.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreCVPath, "cv", "", "Path to a plain-text CV file")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to a plain-text job description file")
	scoreCmd.Flags().StringVar(&scoreCVText, "cv-text", "", "Inline CV text (overrides --cv)")
	scoreCmd.Flags().StringVar(&scoreJobText, "job-text", "", "Inline job text (overrides --job)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(logJSON, logDebug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cvText, err := textFromFlagOrFile(scoreCVText, scoreCVPath)
	if err != nil {
		return fmt.Errorf("read cv: %w", err)
	}
	jobText, err := textFromFlagOrFile(scoreJobText, scoreJobPath)
	if err != nil {
		return fmt.Errorf("read job: %w", err)
	}

	orchestrator := scoring.NewDefault(cfg, log)
	resp := orchestrator.Score(cmd.Context(), scoring.Request{CVText: cvText, JobText: jobText})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func textFromFlagOrFile(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
