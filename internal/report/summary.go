// File: internal/report/summary.go
package report

import (
	"fmt"
	"strings"
)

// Summary aggregates per-severity counts over a finding sequence. Counts
// includes unrecognized severities under their raw names; only the three
// known levels are ever itemized in the rendered breakdown, so
// Total >= sum of itemized counts and the difference is the number of
// findings with unrecognized severity.
type Summary struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// Summarize counts findings per severity. Call it on the filtered sequence:
// the summary reflects what is displayed, not what the report contained.
func Summarize(findings []Finding) Summary {
	s := Summary{
		Total:  len(findings),
		Counts: make(map[string]int),
	}
	for _, f := range findings {
		s.Counts[string(f.Severity)]++
	}
	return s
}

// Line renders the one-line form, e.g.
//
//	Total: 3 problems (1 errors, 2 warnings)
//
// Known levels appear in fixed severity order and zero-count levels are
// omitted; with none present the parentheses are empty.
func (s Summary) Line() string {
	parts := make([]string, 0, len(summaryOrder))
	for _, level := range summaryOrder {
		if n := s.Counts[string(level)]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %ss", n, level))
		}
	}
	return fmt.Sprintf("Total: %d problems (%s)", s.Total, strings.Join(parts, ", "))
}
