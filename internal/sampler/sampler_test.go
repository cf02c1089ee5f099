package sampler

import (
	"testing"
	"time"
)

func TestSampleIterationCount(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		want       int
	}{
		{"single shot", 1, 1},
		{"benchmark mode", 10, 10},
		{"zero clamps to one", 0, 1},
		{"negative clamps to one", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			res := Sample(func(string) (string, bool) {
				calls++
				return "ok", true
			}, "", tt.iterations)

			if len(res.Samples) != tt.want {
				t.Errorf("len(Samples) = %d, want %d", len(res.Samples), tt.want)
			}
			if calls != tt.want {
				t.Errorf("solver invoked %d times, want %d", calls, tt.want)
			}
		})
	}
}

// Only the first iteration's return value is inspected; later
// iterations exist solely for timing.
func TestSampleCapturesFirstValue(t *testing.T) {
	calls := 0
	res := Sample(func(string) (string, bool) {
		calls++
		if calls == 1 {
			return "first", true
		}
		return "later", true
	}, "", 5)

	if res.Value != "first" || !res.Solved {
		t.Errorf("Value = %q (solved %v), want the first iteration's answer", res.Value, res.Solved)
	}
}

func TestSampleUnsolved(t *testing.T) {
	res := Sample(func(string) (string, bool) { return "", false }, "", 1)
	if res.Solved {
		t.Error("Solved should be false when the solver returns no answer")
	}
	if len(res.Samples) != 1 {
		t.Errorf("len(Samples) = %d", len(res.Samples))
	}
}

func TestSamplePassesInput(t *testing.T) {
	var seen string
	Sample(func(input string) (string, bool) {
		seen = input
		return "", false
	}, "1 2 3\n", 1)

	if seen != "1 2 3\n" {
		t.Errorf("solver received %q", seen)
	}
}

// Samples are ordered by invocation sequence: a solver that slows down
// on each call must produce non-decreasing measurements.
func TestSampleOrdering(t *testing.T) {
	calls := 0
	res := Sample(func(string) (string, bool) {
		calls++
		time.Sleep(time.Duration(calls) * 2 * time.Millisecond)
		return "", false
	}, "", 3)

	for i := 1; i < len(res.Samples); i++ {
		if res.Samples[i] < res.Samples[i-1] {
			t.Fatalf("samples out of invocation order: %v", res.Samples)
		}
	}
}

func TestSampleMeasuresElapsed(t *testing.T) {
	res := Sample(func(string) (string, bool) {
		time.Sleep(5 * time.Millisecond)
		return "", false
	}, "", 1)

	if res.Samples[0] < 5*time.Millisecond {
		t.Errorf("sample %v shorter than the solver's sleep", res.Samples[0])
	}
}

// Abnormal termination propagates unchanged; catching it is the
// invoker's job.
func TestSamplePanicPropagates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic should propagate out of Sample")
		}
	}()
	Sample(func(string) (string, bool) { panic("boom") }, "", 3)
}
