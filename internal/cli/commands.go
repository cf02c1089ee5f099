package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agbru/questbench/internal/app"
	"github.com/agbru/questbench/internal/config"
	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/quest"
)

func newApp(cfg *config.AppConfig, cmd *cobra.Command) *app.Application {
	return app.New(*cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newSolveCmd(cfg *config.AppConfig) *cobra.Command {
	var (
		partFlag int
		sample   bool
		release  bool
	)
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Run the solution for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := quest.ParseDay(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			opts := app.SolveOptions{Category: input.Inputs, Release: release}
			if sample {
				opts.Category = input.Samples
			}
			if cmd.Flags().Changed("part") {
				part, err := quest.NewPart(partFlag)
				if err != nil {
					return apperrors.NewConfigError("%v", err)
				}
				opts.Part = &part
			}
			return newApp(cfg, cmd).SolveDay(cmd.Context(), day, opts)
		},
	}
	cmd.Flags().IntVarP(&partFlag, "part", "p", 0, "run a single part (1-3)")
	cmd.Flags().BoolVar(&sample, "sample", false, "run against sample data instead of inputs")
	cmd.Flags().BoolVar(&release, "release", false, "submit the computed answer via ec-cli (requires --part)")
	return cmd
}

func newAllCmd(cfg *config.AppConfig) *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every registered solution and print the timing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category := input.Inputs
			if sample {
				category = input.Samples
			}
			return newApp(cfg, cmd).RunAll(cmd.Context(), category)
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "run against sample data instead of inputs")
	return cmd
}

func newBenchCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Benchmark every solution and update the README table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newApp(cfg, cmd).Bench(cmd.Context())
		},
	}
}

func newScaffoldCmd(cfg *config.AppConfig) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "scaffold <day>",
		Short: "Create the solution module and data files for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := quest.ParseDay(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			return newApp(cfg, cmd).Scaffold(day, overwrite)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing solution module")
	return cmd
}

func newDownloadCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "download <day>",
		Short: "Fetch inputs, samples and descriptions for a day via ec-cli",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := quest.ParseDay(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			return newApp(cfg, cmd).Download(cmd.Context(), day)
		},
	}
}

func newReadCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "read <day>",
		Short: "Open the puzzle description for a day via ec-cli",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := quest.ParseDay(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			return newApp(cfg, cmd).Read(cmd.Context(), day)
		},
	}
}

func newSubmitCmd(cfg *config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <day> <part> <answer>",
		Short: "Submit an answer for one part via ec-cli",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := quest.ParseDay(args[0])
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			part, err := quest.NewPart(atoiOrZero(args[1]))
			if err != nil {
				return apperrors.NewConfigError("%v", err)
			}
			return newApp(cfg, cmd).Submit(cmd.Context(), day, part, args[2])
		},
	}
}

// atoiOrZero parses s, mapping any parse failure to zero so the part
// validator produces the user-facing error.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
