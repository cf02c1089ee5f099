package solutions

import (
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/registry"
)

var day01 = quest.MustDay(1)

func init() {
	registry.Register(day01, quest.Part1, day01Part1)
	registry.Register(day01, quest.Part2, day01Part2)
	registry.Register(day01, quest.Part3, day01Part3)
}

func day01Part1(input string) (string, bool) {
	return "", false
}

func day01Part2(input string) (string, bool) {
	return "", false
}

func day01Part3(input string) (string, bool) {
	return "", false
}
