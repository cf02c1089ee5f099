// Package render serializes a report into a markdown benchmark table and
// merges it into the sentinel-delimited region of a target document,
// conventionally the README.
package render

import (
	"fmt"
	"strings"

	"github.com/agbru/questbench/internal/format"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/report"
)

// BeginMarker and EndMarker delimit the renderer-owned region of the
// target document. Everything outside them is preserved byte for byte.
const (
	BeginMarker = "<!-- BENCHMARKS: BEGIN -->"
	EndMarker   = "<!-- BENCHMARKS: END -->"
)

// Render emits the benchmark table for rep: one row per day with at
// least one attempted cell, up to three part cells, a per-day total
// column and a trailing grand total.
//
// The rendered per-part figure is the fastest sample of the cell; the
// day and grand totals sum those figures. Render is pure — identical
// reports produce byte-identical text.
func Render(rep *report.Report) string {
	var b strings.Builder
	b.WriteString("| Day | Part 1 | Part 2 | Part 3 | Total |\n")
	b.WriteString("| :---: | ---: | ---: | ---: | ---: |\n")
	for _, day := range rep.Days() {
		fmt.Fprintf(&b, "| %s |", day)
		for _, part := range quest.Parts() {
			fmt.Fprintf(&b, " %s |", cellText(rep, day, part))
		}
		fmt.Fprintf(&b, " `%s` |\n", format.Duration(rep.DayTotal(day)))
	}
	fmt.Fprintf(&b, "\n**Total: %s**\n", format.Duration(rep.GrandTotal()))
	return b.String()
}

// cellText renders one part cell: the fastest sample for a solved cell,
// a failure marker for a failed one, and a dash for unsolved or absent
// cells.
func cellText(rep *report.Report, day quest.Day, part quest.Part) string {
	agg, ok := rep.Cell(day, part)
	switch {
	case !ok, agg.Unsolved:
		return "-"
	case agg.Failed:
		return "❌"
	default:
		return "`" + format.Duration(agg.Fastest) + "`"
	}
}
