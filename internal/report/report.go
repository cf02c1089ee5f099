// Package report accumulates per-cell timing statistics for one
// orchestration run. A Report lives only for the run that built it; the
// renderer consumes it and only the rendered text persists.
package report

import (
	"sort"
	"sync"
	"time"

	"github.com/agbru/questbench/internal/quest"
)

// Aggregate summarizes the sample set of one attempted cell. It is
// derived once from the samples and never mutated afterwards.
type Aggregate struct {
	// Fastest and Slowest are the extreme samples.
	Fastest time.Duration
	Slowest time.Duration
	// Mean is Total divided by Count.
	Mean time.Duration
	// Total is the sum of all samples.
	Total time.Duration
	// Count is the number of samples taken.
	Count int
	// Failed marks a cell that was attempted but did not complete
	// (solver panic, timeout or unreadable input).
	Failed bool
	// Unsolved marks a cell whose solver completed without producing an
	// answer.
	Unsolved bool
}

// Summarize derives the aggregate statistics for a sample set. It is a
// pure function: the input slice is not retained.
func Summarize(samples []time.Duration) Aggregate {
	agg := Aggregate{Count: len(samples)}
	if len(samples) == 0 {
		return agg
	}
	agg.Fastest = samples[0]
	agg.Slowest = samples[0]
	for _, s := range samples {
		if s < agg.Fastest {
			agg.Fastest = s
		}
		if s > agg.Slowest {
			agg.Slowest = s
		}
		agg.Total += s
	}
	agg.Mean = agg.Total / time.Duration(len(samples))
	return agg
}

// Failure returns the aggregate marker for a cell that was attempted but
// did not complete.
func Failure() Aggregate {
	return Aggregate{Failed: true}
}

// Report maps each attempted cell to its aggregate. Absent cells have no
// entry at all. Add is safe for concurrent use so orchestration workers
// can fold in outcomes directly; slots never collide since each
// (day, part) is attempted at most once per run.
type Report struct {
	mu    sync.Mutex
	cells map[quest.Day]map[quest.Part]Aggregate
}

// New creates an empty Report.
func New() *Report {
	return &Report{cells: make(map[quest.Day]map[quest.Part]Aggregate)}
}

// Add records the aggregate for one cell.
func (r *Report) Add(day quest.Day, part quest.Part, agg Aggregate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts, ok := r.cells[day]
	if !ok {
		parts = make(map[quest.Part]Aggregate)
		r.cells[day] = parts
	}
	parts[part] = agg
}

// Cell returns the aggregate recorded for the given cell, if any.
func (r *Report) Cell(day quest.Day, part quest.Part) (Aggregate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agg, ok := r.cells[day][part]
	return agg, ok
}

// Days returns the days with at least one attempted cell, in ascending
// order. This fixes the table ordering independently of completion
// order.
func (r *Report) Days() []quest.Day {
	r.mu.Lock()
	defer r.mu.Unlock()
	days := make([]quest.Day, 0, len(r.cells))
	for day := range r.cells {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Len returns the number of attempted cells.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, parts := range r.cells {
		n += len(parts)
	}
	return n
}

// DayTotal sums the rendered figure (the fastest sample) of each solved
// cell of the day. Failed and unsolved cells contribute nothing.
func (r *Report) DayTotal(day quest.Day) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total time.Duration
	for _, agg := range r.cells[day] {
		if !agg.Failed && !agg.Unsolved {
			total += agg.Fastest
		}
	}
	return total
}

// GrandTotal sums DayTotal across every day in the report.
func (r *Report) GrandTotal() time.Duration {
	var total time.Duration
	for _, day := range r.Days() {
		total += r.DayTotal(day)
	}
	return total
}
