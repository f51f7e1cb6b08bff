// Package commands holds the cobra command tree of listing-export.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = slog.Default()
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "listing-export",
		Short:        "Export tenant listings and door-code boards for a building",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				level = slog.LevelInfo
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(exportCmd(), checkCmd(), showCmd())
	return root
}
