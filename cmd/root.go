// Package cmd implements the gobandits command line interface
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootCommand returns the gobandits command
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobandits",
		Short: "Run k-armed bandit testbed experiments",
		Long: "gobandits runs agents on the k-armed bandit testbed and " +
			"reports the average reward and the fraction of optimal " +
			"actions on each round, averaged over independent runs.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		RunCommand(),
		SweepCommand(),
	)

	return cmd
}
