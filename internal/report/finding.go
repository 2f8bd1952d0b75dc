// File: internal/report/finding.go
package report

// Finding is one normalized issue extracted from a report. Fields are never
// "absent": a finding with no location carries an empty Location string, a
// finding with no message an empty Message. Findings are values; the pipeline
// copies and re-slices them but never mutates one after construction.
type Finding struct {
	Severity Severity `json:"severity"`
	RuleID   string   `json:"ruleId"`
	Message  string   `json:"message"`
	Location string   `json:"location"`
}

// RuleUnknown is the sentinel rule identifier for results that carry none.
const RuleUnknown = "unknown"
