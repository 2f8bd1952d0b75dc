// File: internal/report/severity.go
package report

// Severity is the priority classification of a finding, as reported in the
// SARIF `level` field. The three known levels are ordered error < warning <
// note; anything else ranks below all of them.
type Severity string

// The severity levels Qodana emits. Values mirror SARIF 2.1.0 result levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// RankUnrecognized is the rank assigned to severities outside the known set.
// It sorts after every known level and, used as a filter threshold, lets
// every finding through.
const RankUnrecognized = 99

// severityRanks is the process-wide ranking table. It is static
// configuration: the input never alters it.
var severityRanks = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityNote:    2,
}

// Rank returns the sort rank of the severity. Lower is more severe.
// Unrecognized severities return RankUnrecognized rather than an error so a
// report containing nonstandard levels still renders.
func (s Severity) Rank() int {
	if r, ok := severityRanks[s]; ok {
		return r
	}
	return RankUnrecognized
}

// Known reports whether the severity is one of the three itemized levels.
func (s Severity) Known() bool {
	_, ok := severityRanks[s]
	return ok
}

// ThresholdRank resolves a minimum-severity name to its rank. The lookup is
// an exact, case-sensitive match against the ranking table; unrecognized
// names resolve to RankUnrecognized, which disables filtering. That leniency
// matches the loader's treatment of unknown levels and is deliberate.
func ThresholdRank(name string) int {
	return Severity(name).Rank()
}

// summaryOrder fixes the order severities appear in the summary breakdown.
var summaryOrder = []Severity{SeverityError, SeverityWarning, SeverityNote}
