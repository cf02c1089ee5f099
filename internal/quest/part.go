package quest

import (
	"fmt"
	"strconv"
)

// Part selects one of the up to three independently scored sub-problems
// of a day.
type Part uint8

// The three valid part indices.
const (
	Part1 Part = 1
	Part2 Part = 2
	Part3 Part = 3
)

// NewPart returns the Part for n, or an error when n falls outside 1..3.
func NewPart(n int) (Part, error) {
	if n < 1 || n > 3 {
		return 0, fmt.Errorf("invalid part number %d, expecting 1, 2 or 3", n)
	}
	return Part(n), nil
}

// Parts returns the three part indices in ascending order.
func Parts() []Part {
	return []Part{Part1, Part2, Part3}
}

// String renders the part as a single digit.
func (p Part) String() string { return strconv.Itoa(int(p)) }
