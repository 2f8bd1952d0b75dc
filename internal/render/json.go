// File: internal/render/json.go
package render

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/alnovis/qodana-report/internal/report"
)

// Envelope is the machine-readable form of a rendered report: the summary
// counts plus the filtered, sorted findings.
type Envelope struct {
	Total    int              `json:"total"`
	Counts   map[string]int   `json:"counts"`
	Findings []report.Finding `json:"findings"`
}

// jsonRenderer emits the envelope as pretty-printed JSON instead of the text
// layout. It replaces the summary line as well; the document carries the same
// numbers.
type jsonRenderer struct {
	w io.Writer
}

func (r *jsonRenderer) Render(findings []report.Finding) error {
	sum := report.Summarize(findings)
	// Findings marshals as [] rather than null when the report is empty.
	env := Envelope{
		Total:    sum.Total,
		Counts:   sum.Counts,
		Findings: make([]report.Finding, 0, len(findings)),
	}
	env.Findings = append(env.Findings, findings...)

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.w, string(out))
	return err
}
