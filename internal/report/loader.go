// File: internal/report/loader.go
package report

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/alnovis/qodana-report/internal/sarif"
)

// Loader turns a SARIF report file into the normalized finding sequence the
// rest of the pipeline operates on.
type Loader struct {
	shortcuts ShortcutTable
	logger    *zap.Logger
}

// NewLoader creates a loader that shortens location paths with the given
// table. A nil table disables shortening.
func NewLoader(shortcuts ShortcutTable, logger *zap.Logger) *Loader {
	return &Loader{
		shortcuts: shortcuts,
		logger:    logger.Named("loader"),
	}
}

// Load reads the report at path and returns its findings sorted by severity
// rank. The sort is stable, so findings of equal severity keep the order the
// report listed them in. Only the first run of a multi-run document is read.
//
// A missing file yields *NotFoundError before any parsing happens; a file
// that is not valid JSON or lacks the runs/results structure yields
// *ParseError.
func (l *Loader) Load(path string) ([]Finding, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat report file: %w", err)
	}

	doc, err := sarif.DecodeFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	run := doc.Runs[0]
	l.logger.Debug("Parsed SARIF report",
		zap.String("path", path),
		zap.String("tool", run.Tool.Driver.Name),
		zap.String("tool_version", run.Tool.Driver.Version),
		zap.Int("runs", len(doc.Runs)),
		zap.Int("results", len(run.Results)))

	findings := make([]Finding, 0, len(run.Results))
	for _, r := range run.Results {
		findings = append(findings, l.normalize(r))
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Severity.Rank() < findings[j].Severity.Rank()
	})

	return findings, nil
}

// normalize maps one raw result to a Finding, applying the defaults for
// absent fields: level "note", rule "unknown", empty message, empty location.
func (l *Loader) normalize(r sarif.Result) Finding {
	f := Finding{
		Severity: Severity(r.Level),
		RuleID:   r.RuleID,
		Message:  r.Message.Text,
	}
	if f.Severity == "" {
		f.Severity = SeverityNote
	}
	if f.RuleID == "" {
		f.RuleID = RuleUnknown
	}
	if len(r.Locations) > 0 {
		phys := r.Locations[0].PhysicalLocation
		line := "?"
		if phys.Region.StartLine > 0 {
			line = fmt.Sprintf("%d", phys.Region.StartLine)
		}
		f.Location = fmt.Sprintf("%s:%s", l.shortcuts.Shorten(phys.ArtifactLocation.URI), line)
	}
	return f
}
