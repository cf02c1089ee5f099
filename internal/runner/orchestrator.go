package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/logging"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/registry"
	"github.com/agbru/questbench/internal/report"
)

// SolverSource supplies the solver registered for a cell, if any.
// *registry.Registry satisfies it.
type SolverSource interface {
	Lookup(day quest.Day, part quest.Part) (registry.Solver, bool)
}

// InputSource supplies the persisted input text for a cell.
// *input.Loader satisfies it.
type InputSource interface {
	Read(cat input.Category, day quest.Day, part quest.Part) (string, error)
}

// BatchOptions configure one whole-calendar run.
type BatchOptions struct {
	// Category selects the data tree to read, defaulting to Inputs.
	Category input.Category
	// Workers bounds the number of concurrently evaluated cells.
	// Values below one behave as one. Benchmark runs should keep the
	// default so every measured region owns an uncontended slice.
	Workers int
	// Progress, when set, is called before each cell is evaluated.
	Progress func(day quest.Day, part quest.Part)
}

// RunAll visits every (day, part) cell — days ascending, parts ascending
// within a day — and folds the outcome of each registered solver into a
// fresh Report.
//
// The visiting order is a rendering contract, not an execution one:
// cells share no mutable state besides the report accumulator and run on
// an errgroup-bounded worker pool, and the final table ordering never
// depends on completion order. Absent cells are excluded from the
// report; unreadable input, solver panics and timeouts fold in as
// failure markers without aborting siblings.
//
// RunAll fails only when zero cells were attempted, returning
// apperrors.ErrEmptyReport to signal upstream misconfiguration.
func (r *Runner) RunAll(ctx context.Context, solvers SolverSource, inputs InputSource, opts BatchOptions) (*report.Report, error) {
	if opts.Category == "" {
		opts.Category = input.Inputs
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	rep := report.New()
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, day := range quest.AllDays() {
		for _, part := range quest.Parts() {
			fn, ok := solvers.Lookup(day, part)
			if !ok {
				continue
			}
			day, part, fn := day, part, fn
			g.Go(func() error {
				if opts.Progress != nil {
					opts.Progress(day, part)
				}
				// Input loading happens before timing starts and is
				// excluded from the measured region.
				text, err := inputs.Read(opts.Category, day, part)
				if err != nil {
					r.printFailed(day, part, err)
					r.logCellError(day, part, err)
					rep.Add(day, part, report.Failure())
					return nil
				}
				out := r.Run(ctx, day, part, fn, text)
				if out.Err != nil {
					r.logCellError(day, part, out.Err)
					rep.Add(day, part, report.Failure())
					return nil
				}
				agg := report.Summarize(out.Samples)
				agg.Unsolved = !out.Solved
				rep.Add(day, part, agg)
				return nil
			})
		}
	}
	g.Wait()

	if rep.Len() == 0 {
		return nil, apperrors.ErrEmptyReport
	}
	return rep, nil
}

func (r *Runner) logCellError(day quest.Day, part quest.Part, err error) {
	if r.Log == nil {
		return
	}
	r.Log.Error("cell did not complete", err,
		logging.String("day", day.String()),
		logging.String("part", part.String()))
}
