// Package runner invokes solvers cell by cell and orchestrates whole
// calendar runs. It sits between the opaque solver functions and the
// report: the Runner drives the sampler around each call, isolates
// per-cell failures, and emits one human-readable console line per
// invocation.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/format"
	"github.com/agbru/questbench/internal/logging"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/registry"
	"github.com/agbru/questbench/internal/sampler"
	"github.com/agbru/questbench/internal/ui"
)

// Outcome is the result of invoking one (day, part) cell.
type Outcome struct {
	Day  quest.Day
	Part quest.Part
	// Value is the answer captured from the first invocation.
	Value string
	// Solved reports whether the solver produced an answer.
	Solved bool
	// Attempted is false only when no solver exists for the cell —
	// distinct from a solver returning no answer and from a failure.
	Attempted bool
	// Samples holds the elapsed duration of every invocation.
	Samples []time.Duration
	// Err carries the SolverFailureError when the cell did not complete.
	Err error
}

// Runner invokes solvers and reports each invocation on the console.
type Runner struct {
	// Iterations is the number of timed samples per cell; values below
	// one behave as one. Higher counts average out scheduling noise in
	// benchmark mode.
	Iterations int
	// Timeout bounds each solver call. Zero means no per-cell bound.
	Timeout time.Duration
	// Out receives the per-invocation console lines. The output is
	// informational only and never affects report correctness.
	Out io.Writer
	// Log receives debug-level diagnostics. Nil disables them.
	Log logging.Logger
}

// Run invokes the solver for one cell against the given input.
//
// An absent (nil) solver returns immediately with Attempted=false and a
// "skipped" console line — no timing happens. Otherwise the call is
// delegated to the sampler; a panic or an exceeded timeout is converted
// to a failure outcome at this boundary so that sibling invocations are
// never aborted. Input loading is the caller's responsibility and is
// excluded from the measured region.
func (r *Runner) Run(ctx context.Context, day quest.Day, part quest.Part, fn registry.Solver, input string) Outcome {
	if fn == nil {
		r.printLine(day, part, ui.Current().Muted.Render("skipped"))
		return Outcome{Day: day, Part: part}
	}

	out := Outcome{Day: day, Part: part, Attempted: true}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	type sampled struct {
		res sampler.Result
		err error
	}
	done := make(chan sampled, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- sampled{err: apperrors.SolverFailureError{
					Day: day, Part: part, Message: fmt.Sprint(rec),
				}}
			}
		}()
		done <- sampled{res: sampler.Sample(fn, input, r.Iterations)}
	}()

	select {
	case s := <-done:
		if s.err != nil {
			out.Err = s.err
			r.printFailed(day, part, s.err)
			return out
		}
		out.Value = s.res.Value
		out.Solved = s.res.Solved
		out.Samples = s.res.Samples
		r.printOutcome(out)
		return out
	case <-ctx.Done():
		// The solver goroutine is abandoned; one hung solver must never
		// block the rest of the batch.
		out.Err = apperrors.SolverFailureError{
			Day: day, Part: part, Message: r.interruptReason(ctx, day, part),
		}
		r.printFailed(day, part, out.Err)
		return out
	}
}

func (r *Runner) interruptReason(ctx context.Context, day quest.Day, part quest.Part) string {
	if ctx.Err() == context.DeadlineExceeded {
		return apperrors.TimeoutError{
			Operation: fmt.Sprintf("day %s part %s", day, part),
			Limit:     r.Timeout,
		}.Error()
	}
	return "canceled"
}

// printOutcome writes the single console line for a completed
// invocation: day, part, auto-scaled elapsed time and the value or its
// absence.
func (r *Runner) printOutcome(out Outcome) {
	theme := ui.Current()
	elapsed := format.Duration(fastest(out.Samples))
	if len(out.Samples) > 1 {
		elapsed = fmt.Sprintf("%s (best of %d)", elapsed, len(out.Samples))
	}
	if out.Solved {
		r.printLine(out.Day, out.Part, fmt.Sprintf("%s %s",
			theme.Bold.Render(out.Value), theme.Muted.Render("("+elapsed+")")))
		return
	}
	r.printLine(out.Day, out.Part, fmt.Sprintf("%s %s",
		theme.Warning.Render("unsolved"), theme.Muted.Render("("+elapsed+")")))
}

func (r *Runner) printFailed(day quest.Day, part quest.Part, err error) {
	r.printLine(day, part, ui.Current().Error.Render(fmt.Sprintf("failed: %v", err)))
}

func (r *Runner) printLine(day quest.Day, part quest.Part, status string) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, "Day %s Part %s: %s\n", day, part, status)
}

func fastest(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	best := samples[0]
	for _, s := range samples[1:] {
		if s < best {
			best = s
		}
	}
	return best
}
