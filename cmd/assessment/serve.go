package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SAP-F-2025/employability-assessment/internal/app"
	"github.com/SAP-F-2025/employability-assessment/internal/config"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the HTTP API server. Settings come from the environment (PORT, DATABASE_DRIVER, DATABASE_URL, REDIS_URL, EVENTS_*).",
	RunE:  runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			a.Logger.Error("Failed to release resources", "error", err)
		}
	}()

	return a.Run(ctx)
}
