package solutions

import (
	"strings"
	"testing"

	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/registry"
)

// checkSampleAnswer runs fn against the day's sample data and compares
// the result with the downloaded sample answer. Missing sample data or
// a not-yet-solved part skips instead of failing, so a freshly
// scaffolded day keeps the suite green.
func checkSampleAnswer(t *testing.T, day quest.Day, part quest.Part, fn registry.Solver) {
	t.Helper()

	loader := input.NewLoader("../data")
	sample, err := loader.Read(input.Samples, day, part)
	if err != nil {
		t.Skipf("sample not available: %v", err)
	}
	want, err := loader.Read(input.Answers, day, part)
	if err != nil {
		t.Skipf("sample answer not available: %v", err)
	}

	got, ok := fn(sample)
	if !ok {
		t.Skipf("day %s part %s not solved yet", day, part)
	}
	if got != strings.TrimSpace(want) {
		t.Errorf("day %s part %s = %q, want %q", day, part, got, strings.TrimSpace(want))
	}
}
