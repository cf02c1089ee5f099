package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-microsecond", 900 * time.Nanosecond, "0.9µs"},
		{"microseconds", 45 * time.Microsecond, "45.0µs"},
		{"just below a millisecond", 999*time.Microsecond + 900*time.Nanosecond, "999.9µs"},
		{"milliseconds", 1200 * time.Microsecond, "1.2ms"},
		{"larger milliseconds", 2*time.Millisecond + 45*time.Microsecond, "2.0ms"},
		{"just below a second", 999 * time.Millisecond, "999.0ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"minutes stay in seconds", 90 * time.Second, "90.0s"},
		{"zero", 0, "0.0µs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.d); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// Identical inputs must render identically; the report renderer relies
// on this for byte-stable output.
func TestDurationDeterministic(t *testing.T) {
	d := 1234567 * time.Nanosecond
	first := Duration(d)
	for i := 0; i < 10; i++ {
		if got := Duration(d); got != first {
			t.Fatalf("Duration(%v) not stable: %q vs %q", d, got, first)
		}
	}
}
