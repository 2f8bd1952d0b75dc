// File: internal/report/filter.go
package report

// Filter returns the findings at least as severe as the named threshold,
// preserving their order. An empty threshold is a pass-through. A threshold
// name outside the ranking table resolves to RankUnrecognized and therefore
// also passes everything: unknown names disable filtering instead of failing,
// mirroring how the loader treats unknown severities in the input.
//
// Filtering an already-filtered sequence at the same threshold returns an
// equal sequence.
func Filter(findings []Finding, threshold string) []Finding {
	if threshold == "" {
		return findings
	}
	max := ThresholdRank(threshold)
	kept := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Severity.Rank() <= max {
			kept = append(kept, f)
		}
	}
	return kept
}
