// Package quest defines the small value types shared across the harness:
// the quest day (1-25) and the part index (1-3). Both are constructed
// validated and immutable afterwards.
package quest

import (
	"fmt"
	"strconv"
)

// MaxDay is the highest valid quest day number.
const MaxDay = 25

// Day is a validated quest day number in the range 1 to 25.
// The zero value is not a valid day; construct one with NewDay, MustDay
// or ParseDay. Days are comparable and usable as map keys.
type Day struct {
	n uint8
}

// NewDay returns the Day for n, or an error when n falls outside 1..25.
func NewDay(n int) (Day, error) {
	if n < 1 || n > MaxDay {
		return Day{}, fmt.Errorf("invalid day number %d, expecting a value between 1 and %d", n, MaxDay)
	}
	return Day{n: uint8(n)}, nil
}

// MustDay is like NewDay but panics on an invalid day number.
// Intended for the compile-time constants in solution files.
func MustDay(n int) Day {
	d, err := NewDay(n)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDay parses a day number from its decimal string form, as received
// on the command line. Leading zeros are accepted, so "08" and "8" name
// the same day.
func ParseDay(s string) (Day, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q, expecting a number between 1 and %d", s, MaxDay)
	}
	return NewDay(n)
}

// Int returns the day number as a plain int.
func (d Day) Int() int { return int(d.n) }

// String renders the day as a canonical two-digit number, e.g. "08".
// Data file names and report rows rely on this form.
func (d Day) String() string { return fmt.Sprintf("%02d", d.n) }

// Before reports whether d sorts before other in calendar order.
func (d Day) Before(other Day) bool { return d.n < other.n }

// AllDays returns every quest day from the 1st to the 25th in ascending
// order.
func AllDays() []Day {
	days := make([]Day, 0, MaxDay)
	for n := 1; n <= MaxDay; n++ {
		days = append(days, Day{n: uint8(n)})
	}
	return days
}
