// File: internal/render/render_test.go
package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnovis/qodana-report/internal/render"
	"github.com/alnovis/qodana-report/internal/report"
)

// pad right-pads s with spaces to the given column width, mirroring the
// contract of the text layout: severity in 7 columns, location in 70.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// flatLine builds one expected flat-mode row.
func flatLine(severity, location, message string) string {
	return pad(severity, 7) + " | " + pad(location, 70) + " | " + message + "\n"
}

// renderString runs the given mode over findings and returns what it wrote.
func renderString(t *testing.T, mode string, findings []report.Finding) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := render.New(&buf, mode)
	require.NoError(t, err)
	require.NoError(t, r.Render(findings))
	return buf.String()
}

// sampleFindings is a filtered, severity-sorted sequence the way renderers
// receive it from the pipeline.
func sampleFindings() []report.Finding {
	return []report.Finding{
		{Severity: report.SeverityError, RuleID: "NullPointer", Message: "Possible NPE", Location: "core:Api.java:12"},
		{Severity: report.SeverityWarning, RuleID: "UnusedImport", Message: "Unused import", Location: "maven:GenerateMojo.java:40"},
		{Severity: report.SeverityNote, RuleID: "Style", Message: "Nit", Location: ""},
	}
}

// -- Test Cases: factory --

// Verifies every display mode constructs and unknown modes are rejected.
func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for _, mode := range []string{render.ModeFlat, render.ModeGroup, render.ModeQuiet, render.ModeJSON} {
		r, err := render.New(&buf, mode)
		require.NoError(t, err, "mode %q", mode)
		assert.NotNil(t, r)
	}

	r, err := render.New(&buf, "fancy")
	assert.Nil(t, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported display mode: fancy")
}

// -- Test Cases: quiet mode --

// Verifies quiet mode prints the summary line, the separating blank line and
// nothing else.
func TestQuiet(t *testing.T) {
	out := renderString(t, render.ModeQuiet, sampleFindings())
	want := "Total: 3 problems (1 errors, 1 warnings, 1 notes)\n\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("quiet output mismatch (-want +got):\n%s", diff)
	}
}

// Verifies the empty report renders with empty parentheses.
func TestQuiet_EmptyReport(t *testing.T) {
	out := renderString(t, render.ModeQuiet, nil)
	assert.Equal(t, "Total: 0 problems ()\n\n", out)
}

// -- Test Cases: flat mode --

// Verifies the full flat layout byte for byte: summary, blank line, one
// aligned row per finding in the order given.
func TestFlat(t *testing.T) {
	out := renderString(t, render.ModeFlat, sampleFindings())

	want := "Total: 3 problems (1 errors, 1 warnings, 1 notes)\n\n" +
		flatLine("error", "core:Api.java:12", "Possible NPE") +
		flatLine("warning", "maven:GenerateMojo.java:40", "Unused import") +
		flatLine("note", "", "Nit")

	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("flat output mismatch (-want +got):\n%s", diff)
	}
}

// Verifies unrecognized severities render under their raw name and stay out
// of the summary breakdown.
func TestFlat_UnrecognizedSeverity(t *testing.T) {
	findings := []report.Finding{
		{Severity: report.Severity("info"), RuleID: "Odd", Message: "m", Location: "x.go:1"},
	}
	out := renderString(t, render.ModeFlat, findings)

	want := "Total: 1 problems ()\n\n" + flatLine("info", "x.go:1", "m")
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("flat output mismatch (-want +got):\n%s", diff)
	}
}

// Verifies messages are capped at their first 100 characters, counted in
// runes so multibyte text is never split mid-sequence.
func TestFlat_TruncatesMessages(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		long := strings.Repeat("a", 101)
		out := renderString(t, render.ModeFlat, []report.Finding{
			{Severity: report.SeverityError, RuleID: "R", Message: long, Location: "x.go:1"},
		})
		assert.Contains(t, out, strings.Repeat("a", 100))
		assert.NotContains(t, out, long)
	})

	t.Run("exactly 100 stays whole", func(t *testing.T) {
		msg := strings.Repeat("b", 100)
		out := renderString(t, render.ModeFlat, []report.Finding{
			{Severity: report.SeverityError, RuleID: "R", Message: msg, Location: "x.go:1"},
		})
		assert.Contains(t, out, msg)
	})

	t.Run("multibyte", func(t *testing.T) {
		long := strings.Repeat("é", 101)
		out := renderString(t, render.ModeFlat, []report.Finding{
			{Severity: report.SeverityError, RuleID: "R", Message: long, Location: "x.go:1"},
		})
		assert.Contains(t, out, strings.Repeat("é", 100))
		assert.NotContains(t, out, long)
	})
}

// Verifies locations longer than the column widen the row instead of being
// cut off.
func TestFlat_LongLocationNotTruncated(t *testing.T) {
	location := strings.Repeat("d", 80) + ".go:9"
	out := renderString(t, render.ModeFlat, []report.Finding{
		{Severity: report.SeverityError, RuleID: "R", Message: "m", Location: location},
	})
	assert.Contains(t, out, location)
}

// -- Test Cases: group mode --

// Verifies the grouped layout: header with severity, rule and count, one
// indented location per member, blank line between groups.
func TestGroup(t *testing.T) {
	findings := []report.Finding{
		{Severity: report.SeverityError, RuleID: "NullPointer", Message: "a", Location: "core:Api.java:12"},
		{Severity: report.SeverityError, RuleID: "NullPointer", Message: "b", Location: "core:Util.java:99"},
		{Severity: report.SeverityWarning, RuleID: "UnusedImport", Message: "c", Location: "maven:Mojo.java:5"},
	}
	out := renderString(t, render.ModeGroup, findings)

	indent := strings.Repeat(" ", 11)
	want := "Total: 3 problems (2 errors, 1 warnings)\n\n" +
		"[error  ] NullPointer (2x)\n" +
		indent + "core:Api.java:12\n" +
		indent + "core:Util.java:99\n" +
		"\n" +
		"[warning] UnusedImport (1x)\n" +
		indent + "maven:Mojo.java:5\n" +
		"\n"

	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("group output mismatch (-want +got):\n%s", diff)
	}
}

// Verifies grouping an empty report stops after the summary.
func TestGroup_EmptyReport(t *testing.T) {
	out := renderString(t, render.ModeGroup, nil)
	assert.Equal(t, "Total: 0 problems ()\n\n", out)
}

// -- Test Cases: writer failures --

// failWriter fails every write with a fixed error.
type failWriter struct{ err error }

func (w *failWriter) Write(p []byte) (int, error) { return 0, w.err }

// Verifies write errors propagate out of Render instead of being swallowed.
func TestRender_WriterFailure(t *testing.T) {
	boom := errors.New("boom")
	for _, mode := range []string{render.ModeFlat, render.ModeGroup, render.ModeQuiet, render.ModeJSON} {
		r, err := render.New(&failWriter{err: boom}, mode)
		require.NoError(t, err)
		err = r.Render(sampleFindings())
		assert.ErrorIs(t, err, boom, "mode %q", mode)
	}
}
