// Package cmd holds the command line entry points of the dashboard.
package cmd

import (
	"github.com/spf13/cobra"

	"legislators_dashboard/config"
	"legislators_dashboard/logger"
)

var rootCmd = &cobra.Command{
	Use:           "dashboard",
	Short:         "Country statistics dashboard for legislator datasets",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads .env and the environment, then initialises logging.
func loadConfig() (config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		logger.Logger.Warnf("Error loading .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := logger.Initialize(cfg.LogJSON); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
