package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/questbench/internal/config"
	"github.com/agbru/questbench/internal/format"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/logging"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/render"
	"github.com/agbru/questbench/internal/report"
	"github.com/agbru/questbench/internal/runner"
	"github.com/agbru/questbench/internal/ui"
)

// spinnerRefresh is the refresh interval of the bench progress spinner.
const spinnerRefresh = 200 * time.Millisecond

// RunAll executes every registered cell against the given data category
// and prints the rendered benchmark table. It fails with ErrEmptyReport
// when no cell had a solver.
func (a *Application) RunAll(ctx context.Context, category input.Category) error {
	rep, err := a.runAll(ctx, a.runner(), category, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "\n%s", render.Render(rep))
	return nil
}

// Bench runs the whole calendar in repeated-sampling mode and merges the
// rendered table into the README between its sentinel markers. Console
// lines per cell are suppressed; a spinner tracks progress instead.
func (a *Application) Bench(ctx context.Context) error {
	r := a.runner()
	r.Out = io.Discard
	if r.Iterations < 2 {
		r.Iterations = config.BenchIterations
	}

	var progress func(day quest.Day, part quest.Part)
	if !a.Config.Quiet {
		s := spinner.New(spinner.CharSets[11], spinnerRefresh, spinner.WithWriter(a.ErrOut))
		s.Suffix = " benchmarking..."
		s.Start()
		defer s.Stop()
		progress = func(day quest.Day, part quest.Part) {
			s.Suffix = fmt.Sprintf(" benchmarking day %s part %s...", day, part)
		}
	}

	rep, err := a.runAll(ctx, r, input.Inputs, progress)
	if err != nil {
		return err
	}

	table := render.Render(rep)
	if err := render.UpdateFile(a.Config.ReadmePath, table); err != nil {
		return err
	}

	theme := ui.Current()
	fmt.Fprintf(a.Out, "%s\n", theme.Success.Render(
		fmt.Sprintf("✓ Benchmark table written to %s.", a.Config.ReadmePath)))
	fmt.Fprintf(a.Out, "Total: %s across %d cells.\n",
		theme.Bold.Render(format.Duration(rep.GrandTotal())), rep.Len())
	return nil
}

func (a *Application) runAll(ctx context.Context, r *runner.Runner, category input.Category, progress func(quest.Day, quest.Part)) (*report.Report, error) {
	start := time.Now()
	rep, err := r.RunAll(ctx, a.Solvers, a.Inputs, runner.BatchOptions{
		Category: category,
		Workers:  a.Config.Workers,
		Progress: progress,
	})
	if err != nil {
		return nil, err
	}
	a.Log.Debug("batch complete",
		logging.Int("cells", rep.Len()),
		logging.String("elapsed", time.Since(start).String()))
	return rep, nil
}
