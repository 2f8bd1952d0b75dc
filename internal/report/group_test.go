// File: internal/report/group_test.go
package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnovis/qodana-report/internal/report"
)

// Verifies partitioning: one group per rule, members in input order, nothing
// lost.
func TestGroupByRule(t *testing.T) {
	findings := []report.Finding{
		{Severity: report.SeverityError, RuleID: "NullPointer", Message: "first"},
		{Severity: report.SeverityError, RuleID: "UnusedImport", Message: "second"},
		{Severity: report.SeverityWarning, RuleID: "NullPointer", Message: "third"},
	}

	groups := report.GroupByRule(findings)
	require.Len(t, groups, 2)

	assert.Equal(t, "NullPointer", groups[0].RuleID)
	assert.Equal(t, []string{"first", "third"}, messages(groups[0].Findings))
	assert.Equal(t, report.SeverityError, groups[0].Severity())

	assert.Equal(t, "UnusedImport", groups[1].RuleID)
	assert.Equal(t, []string{"second"}, messages(groups[1].Findings))

	total := 0
	for _, g := range groups {
		total += len(g.Findings)
	}
	assert.Equal(t, len(findings), total, "group sizes must sum to the input length")
}

// Verifies groups order by their lead finding's severity, stable over
// first-seen rule order for ties.
func TestGroupByRule_Order(t *testing.T) {
	findings := []report.Finding{
		{Severity: report.SeverityNote, RuleID: "N"},
		{Severity: report.SeverityWarning, RuleID: "W"},
		{Severity: report.SeverityError, RuleID: "E1"},
		{Severity: report.SeverityError, RuleID: "E2"},
		{Severity: report.SeverityNote, RuleID: "N"},
	}

	groups := report.GroupByRule(findings)
	require.Len(t, groups, 4)

	order := make([]string, 0, len(groups))
	for _, g := range groups {
		order = append(order, g.RuleID)
	}
	assert.Equal(t, []string{"E1", "E2", "W", "N"}, order)
	assert.Len(t, groups[3].Findings, 2)
}

// Verifies empty input yields no groups.
func TestGroupByRule_Empty(t *testing.T) {
	assert.Empty(t, report.GroupByRule(nil))
	assert.Empty(t, report.GroupByRule([]report.Finding{}))
}

// messages projects findings onto their message texts.
func messages(findings []report.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}
