// Package cli defines the questbench command surface. Commands are thin
// adapters: they parse and validate arguments, resolve the
// configuration, and delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/agbru/questbench/internal/config"
	"github.com/agbru/questbench/internal/version"
)

// NewRootCmd builds the questbench root command and its subcommands.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:     "questbench",
		Short:   "Scaffold, run and benchmark daily puzzle solutions",
		Version: version.String(),
		Long: `questbench runs puzzle solutions organized by day (1-25), each with up
to three parts. It times every solver invocation, aggregates per-day and
per-part statistics, and maintains the benchmark table in the README.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// CLI flags > environment > defaults.
			config.ApplyEnvOverrides(&cfg, cmd.Flags().Changed)
		},
	}

	fl := root.PersistentFlags()
	fl.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "timed samples per solver invocation")
	fl.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-cell solver timeout (0 disables)")
	fl.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrently evaluated cells in batch runs")
	fl.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "root of the puzzle data tree")
	fl.StringVar(&cfg.ReadmePath, "readme", cfg.ReadmePath, "merge target for the benchmark table")
	fl.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "suppress informational output")
	fl.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable styled output")
	fl.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	root.AddCommand(
		newSolveCmd(&cfg),
		newAllCmd(&cfg),
		newBenchCmd(&cfg),
		newScaffoldCmd(&cfg),
		newDownloadCmd(&cfg),
		newReadCmd(&cfg),
		newSubmitCmd(&cfg),
	)
	return root
}
