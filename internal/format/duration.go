package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display using the harness-wide
// unit rule: microseconds below one millisecond, milliseconds below one
// second, seconds otherwise, always with one decimal digit. The rule is
// applied uniformly so identical durations always render identically;
// the report renderer depends on this for byte-stable output.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}
