// Package registry maps (day, part) cells to their solver functions.
//
// Solution files register their entry points from init functions; the
// harness only ever reads the registry, treating every solver as an
// opaque "text in, optional value out" capability.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/questbench/internal/quest"
)

// Solver computes the answer for one part of one day from its raw input
// text. The boolean reports whether an answer was produced; false is the
// valid "ran, no answer yet" outcome, distinct from a failure.
type Solver func(input string) (string, bool)

type cellKey struct {
	day  quest.Day
	part quest.Part
}

// Registry holds the solvers registered for one calendar. It is safe
// for concurrent use: registration happens during init, lookups may
// come from concurrent orchestration workers.
type Registry struct {
	mu    sync.RWMutex
	cells map[cellKey]Solver
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{cells: make(map[cellKey]Solver)}
}

// Register records fn as the solver for the given cell. Registering the
// same cell twice is a programming error and panics, mirroring
// http.HandleFunc.
func (r *Registry) Register(day quest.Day, part quest.Part, fn Solver) {
	if fn == nil {
		panic(fmt.Sprintf("registry: nil solver for day %s part %s", day, part))
	}
	key := cellKey{day: day, part: part}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.cells[key]; dup {
		panic(fmt.Sprintf("registry: duplicate solver for day %s part %s", day, part))
	}
	r.cells[key] = fn
}

// Lookup returns the solver registered for the given cell, if any.
func (r *Registry) Lookup(day quest.Day, part quest.Part) (Solver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.cells[cellKey{day: day, part: part}]
	return fn, ok
}

// Days returns the days having at least one registered solver, in
// ascending order.
func (r *Registry) Days() []quest.Day {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[quest.Day]bool)
	for key := range r.cells {
		seen[key.day] = true
	}
	days := make([]quest.Day, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Len returns the number of registered cells.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cells)
}

// Default is the process-wide registry populated by the solutions
// package's init functions.
var Default = New()

// Register adds fn to the default registry.
func Register(day quest.Day, part quest.Part, fn Solver) {
	Default.Register(day, part, fn)
}
