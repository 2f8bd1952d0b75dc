// File: internal/render/render.go

// Package render writes finding sequences as console text. Every mode prints
// the summary line first; what follows depends on the mode. Renderers write
// to the io.Writer they are constructed with and nothing else.
package render

import (
	"fmt"
	"io"

	"github.com/alnovis/qodana-report/internal/report"
)

// Renderer writes one finding sequence. The sequence is expected to be
// already filtered and severity-sorted; renderers display, they never reorder.
type Renderer interface {
	Render(findings []report.Finding) error
}

// Display modes.
const (
	ModeFlat  = "flat"
	ModeGroup = "group"
	ModeQuiet = "quiet"
	ModeJSON  = "json"
)

// New returns the renderer for the given display mode.
func New(w io.Writer, mode string) (Renderer, error) {
	switch mode {
	case ModeFlat:
		return &flatRenderer{w: w}, nil
	case ModeGroup:
		return &groupRenderer{w: w}, nil
	case ModeQuiet:
		return &quietRenderer{w: w}, nil
	case ModeJSON:
		return &jsonRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported display mode: %s", mode)
	}
}

// writeSummary prints the summary line and the blank line that separates it
// from any detail output.
func writeSummary(w io.Writer, findings []report.Finding) error {
	_, err := fmt.Fprintf(w, "%s\n\n", report.Summarize(findings).Line())
	return err
}

// quietRenderer stops after the summary.
type quietRenderer struct {
	w io.Writer
}

func (r *quietRenderer) Render(findings []report.Finding) error {
	return writeSummary(r.w, findings)
}

// flatRenderer prints one line per finding: severity and location in fixed
// width columns, message capped at its first 100 characters.
type flatRenderer struct {
	w io.Writer
}

func (r *flatRenderer) Render(findings []report.Finding) error {
	if err := writeSummary(r.w, findings); err != nil {
		return err
	}
	for _, f := range findings {
		_, err := fmt.Fprintf(r.w, "%-7s | %-70s | %s\n",
			f.Severity, f.Location, truncate(f.Message, 100))
		if err != nil {
			return err
		}
	}
	return nil
}

// groupRenderer clusters findings by rule: a header naming the group's
// severity, rule and occurrence count, then one indented location per
// finding, then a blank line.
type groupRenderer struct {
	w io.Writer
}

func (r *groupRenderer) Render(findings []report.Finding) error {
	if err := writeSummary(r.w, findings); err != nil {
		return err
	}
	for _, g := range report.GroupByRule(findings) {
		if _, err := fmt.Fprintf(r.w, "[%-7s] %s (%dx)\n", g.Severity(), g.RuleID, len(g.Findings)); err != nil {
			return err
		}
		for _, f := range g.Findings {
			if _, err := fmt.Fprintf(r.w, "           %s\n", f.Location); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	return nil
}

// truncate caps s at n characters, not bytes, so a multibyte rune is never
// split mid-sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
