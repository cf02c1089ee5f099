// Package sampler times repeated invocations of a single solver.
package sampler

import (
	"time"

	"github.com/agbru/questbench/internal/registry"
)

// Result carries the captured answer and the per-invocation timings of
// one sampled solver.
type Result struct {
	// Value is the answer returned by the first invocation.
	Value string
	// Solved reports whether the first invocation produced an answer.
	Solved bool
	// Samples holds one elapsed duration per invocation, in invocation
	// order. Its length always equals the requested iteration count.
	Samples []time.Duration
}

// Sample invokes fn against input the given number of times, timing each
// run. Iteration counts below one are clamped to one.
//
// time.Since reads the runtime's monotonic clock, so the measured
// durations are immune to wall-clock adjustments. Only the first
// invocation's return value is kept; later iterations exist purely for
// timing and are assumed side-effect free — a documented precondition on
// solvers, not enforced here. A panicking fn propagates unchanged:
// converting abnormal termination into a failure outcome is the
// invoker's job, not the sampler's.
func Sample(fn registry.Solver, input string, iterations int) Result {
	if iterations < 1 {
		iterations = 1
	}
	res := Result{Samples: make([]time.Duration, 0, iterations)}
	for i := 0; i < iterations; i++ {
		start := time.Now()
		value, ok := fn(input)
		res.Samples = append(res.Samples, time.Since(start))
		if i == 0 {
			res.Value = value
			res.Solved = ok
		}
	}
	return res
}
