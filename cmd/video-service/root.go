package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"video-service/internal/videoservice/config"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "video-service",
		Short:         "HTTP service for video records",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file loaded before the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema for the configured backend and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(envFile)
			},
		},
	)

	return root
}

// newLogger builds the process logger for the configured format
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFormat == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
