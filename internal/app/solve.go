package app

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/logging"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/ui"
)

// SolveOptions configure one single-day run.
type SolveOptions struct {
	// Part restricts the run to a single part; nil runs all three.
	Part *quest.Part
	// Category selects inputs or samples as the data source.
	Category input.Category
	// Release submits the computed answer of the selected part via
	// ec-cli. It requires Part to be set.
	Release bool
}

// SolveDay runs the registered parts of one day in single-shot mode,
// printing one console line per part. Parts without a registered solver
// print "skipped"; unreadable input fails that part only.
func (a *Application) SolveDay(ctx context.Context, day quest.Day, opts SolveOptions) error {
	if opts.Category == "" {
		opts.Category = input.Inputs
	}
	if opts.Release && opts.Part == nil {
		return apperrors.NewConfigError("--release requires --part")
	}

	parts := quest.Parts()
	if opts.Part != nil {
		parts = []quest.Part{*opts.Part}
	}

	r := a.runner()
	for _, part := range parts {
		fn, _ := a.Solvers.Lookup(day, part)
		var text string
		if fn != nil {
			loaded, err := a.Inputs.Read(opts.Category, day, part)
			if err != nil {
				fmt.Fprintf(a.ErrOut, "%s\n", ui.Current().Error.Render(err.Error()))
				a.Log.Debug("input unavailable", logging.String("day", day.String()), logging.String("part", part.String()))
				continue
			}
			text = loaded
		}

		out := r.Run(ctx, day, part, fn, text)

		if opts.Release && out.Solved {
			if err := a.submitAnswer(ctx, day, part, out.Value); err != nil {
				return err
			}
		}
	}
	return ctx.Err()
}

// Submit sends a previously computed answer for one cell via ec-cli.
func (a *Application) Submit(ctx context.Context, day quest.Day, part quest.Part, answer string) error {
	return a.submitAnswer(ctx, day, part, answer)
}

func (a *Application) submitAnswer(ctx context.Context, day quest.Day, part quest.Part, answer string) error {
	if err := a.EC.Check(ctx); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if err := a.EC.Submit(ctx, day, part, answer); err != nil {
		return apperrors.WrapError(err, "submit day %s part %s", day, part)
	}
	fmt.Fprintf(a.Out, "%s\n", ui.Current().Success.Render(
		fmt.Sprintf("✓ Submitted %q for day %s part %s.", answer, day, part)))
	return nil
}
