package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/registry"
)

func newBatchFixture(t *testing.T) (*registry.Registry, *input.Loader, string) {
	t.Helper()
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "inputs"), 0o755); err != nil {
		t.Fatal(err)
	}
	return registry.New(), input.NewLoader(base), base
}

func writeInput(t *testing.T, base string, day quest.Day, part quest.Part) {
	t.Helper()
	name := day.String() + "-" + part.String() + ".txt"
	if err := os.WriteFile(filepath.Join(base, "inputs", name), []byte("data\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunAllEmptyReport(t *testing.T) {
	solvers, inputs, _ := newBatchFixture(t)
	r := &Runner{Iterations: 1, Out: io.Discard}

	_, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{})
	if !errors.Is(err, apperrors.ErrEmptyReport) {
		t.Fatalf("RunAll() error = %v, want ErrEmptyReport", err)
	}
}

func TestRunAllExcludesAbsentCells(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	day := quest.MustDay(4)
	solvers.Register(day, quest.Part2, func(string) (string, bool) { return "x", true })
	writeInput(t, base, day, quest.Part2)
	r := &Runner{Iterations: 1, Out: io.Discard}

	rep, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Len() != 1 {
		t.Errorf("Len() = %d, only the registered cell should appear", rep.Len())
	}
	if _, ok := rep.Cell(day, quest.Part1); ok {
		t.Error("absent cell leaked into the report")
	}
	if _, ok := rep.Cell(day, quest.Part2); !ok {
		t.Error("registered cell missing from the report")
	}
}

// One failing cell must not disturb its siblings: the batch keeps
// going and the failure folds in as a marker.
func TestRunAllFailureIsolation(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	day := quest.MustDay(7)
	solvers.Register(day, quest.Part1, func(string) (string, bool) { panic("boom") })
	solvers.Register(day, quest.Part2, func(string) (string, bool) { return "ok", true })
	writeInput(t, base, day, quest.Part1)
	writeInput(t, base, day, quest.Part2)
	r := &Runner{Iterations: 1, Out: io.Discard}

	rep, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{})
	if err != nil {
		t.Fatal(err)
	}

	failed, ok := rep.Cell(day, quest.Part1)
	if !ok || !failed.Failed {
		t.Errorf("panicking cell = %+v, want a failure marker", failed)
	}
	good, ok := rep.Cell(day, quest.Part2)
	if !ok || good.Failed || good.Unsolved {
		t.Errorf("sibling cell = %+v, want a clean aggregate", good)
	}
}

func TestRunAllMissingInputIsFailure(t *testing.T) {
	solvers, inputs, _ := newBatchFixture(t)
	day := quest.MustDay(2)
	solvers.Register(day, quest.Part1, func(string) (string, bool) { return "x", true })
	r := &Runner{Iterations: 1, Out: io.Discard}

	rep, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	agg, ok := rep.Cell(day, quest.Part1)
	if !ok || !agg.Failed {
		t.Errorf("cell with unreadable input = %+v, want a failure marker", agg)
	}
}

func TestRunAllUnsolvedMarker(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	day := quest.MustDay(11)
	solvers.Register(day, quest.Part1, func(string) (string, bool) { return "", false })
	writeInput(t, base, day, quest.Part1)
	r := &Runner{Iterations: 1, Out: io.Discard}

	rep, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	agg, _ := rep.Cell(day, quest.Part1)
	if !agg.Unsolved || agg.Failed {
		t.Errorf("unsolved cell = %+v", agg)
	}
	if agg.Count != 1 {
		t.Errorf("unsolved cells are still timed, Count = %d", agg.Count)
	}
}

func TestRunAllSampleCategory(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	day := quest.MustDay(1)
	var seen string
	solvers.Register(day, quest.Part1, func(in string) (string, bool) {
		seen = in
		return "x", true
	})
	dir := filepath.Join(base, "samples")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "01-1.txt"), []byte("sample\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := &Runner{Iterations: 1, Out: io.Discard}

	if _, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{Category: input.Samples}); err != nil {
		t.Fatal(err)
	}
	if seen != "sample\n" {
		t.Errorf("solver received %q, want the sample tree contents", seen)
	}
}

// The report contents must not depend on the pool width.
func TestRunAllParallelDeterminism(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	days := []int{1, 2, 3, 4, 5, 6}
	for _, n := range days {
		day := quest.MustDay(n)
		for _, part := range quest.Parts() {
			answer := day.String() + part.String()
			solvers.Register(day, part, func(string) (string, bool) { return answer, true })
			writeInput(t, base, day, part)
		}
	}
	r := &Runner{Iterations: 1, Out: io.Discard}

	rep, err := r.RunAll(context.Background(), solvers, inputs, BatchOptions{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Len() != len(days)*3 {
		t.Fatalf("Len() = %d, want %d", rep.Len(), len(days)*3)
	}
	got := rep.Days()
	for i, d := range got {
		if d.Int() != days[i] {
			t.Errorf("Days()[%d] = %d, want %d", i, d.Int(), days[i])
		}
	}
}

func TestRunAllProgressCallback(t *testing.T) {
	solvers, inputs, base := newBatchFixture(t)
	day := quest.MustDay(3)
	solvers.Register(day, quest.Part1, func(string) (string, bool) { return "x", true })
	solvers.Register(day, quest.Part3, func(string) (string, bool) { return "y", true })
	writeInput(t, base, day, quest.Part1)
	writeInput(t, base, day, quest.Part3)
	r := &Runner{Iterations: 1, Out: io.Discard}

	var mu sync.Mutex
	var visited []string
	opts := BatchOptions{Progress: func(d quest.Day, p quest.Part) {
		mu.Lock()
		visited = append(visited, d.String()+"-"+p.String())
		mu.Unlock()
	}}

	if _, err := r.RunAll(context.Background(), solvers, inputs, opts); err != nil {
		t.Fatal(err)
	}
	if len(visited) != 2 {
		t.Errorf("progress called %d times, want one call per registered cell", len(visited))
	}
}
