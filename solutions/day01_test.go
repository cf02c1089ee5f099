package solutions

import (
	"testing"

	"github.com/agbru/questbench/internal/quest"
)

func TestDay01Part1(t *testing.T) {
	checkSampleAnswer(t, day01, quest.Part1, day01Part1)
}

func TestDay01Part2(t *testing.T) {
	checkSampleAnswer(t, day01, quest.Part2, day01Part2)
}

func TestDay01Part3(t *testing.T) {
	checkSampleAnswer(t, day01, quest.Part3, day01Part3)
}
