package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baauozar/cvmatch/internal/config"
	"github.com/baauozar/cvmatch/internal/logger"
	"github.com/baauozar/cvmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP server",
	Long:  `Start an HTTP server exposing the scoring endpoints (JSON, query-parameter and multipart file upload) plus health and language detection.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log, err := logger.New(logJSON, logDebug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	return srv.Run(ctx)
}
