// File: internal/report/group.go
package report

import "sort"

// Group is the set of findings sharing one rule identifier. Findings keep the
// order they had in the input sequence, so the first member is the group's
// most severe finding whenever the input was severity-sorted.
type Group struct {
	RuleID   string
	Findings []Finding
}

// Severity returns the severity of the group's first member, which labels the
// whole group in grouped output.
func (g Group) Severity() Severity {
	return g.Findings[0].Severity
}

// GroupByRule partitions findings by rule identifier. Groups are ordered by
// the severity rank of their first member; the sort is stable over first-seen
// rule order, so on a severity-sorted input the group order is exactly the
// order the rules first appear. Grouping rearranges nothing inside a group
// and loses nothing: the group sizes sum to len(findings).
func GroupByRule(findings []Finding) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, f := range findings {
		i, ok := index[f.RuleID]
		if !ok {
			i = len(groups)
			index[f.RuleID] = i
			groups = append(groups, Group{RuleID: f.RuleID})
		}
		groups[i].Findings = append(groups[i].Findings, f)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Severity().Rank() < groups[j].Severity().Rank()
	})
	return groups
}
