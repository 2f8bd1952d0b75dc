// File: internal/report/errors.go
package report

import "fmt"

// NotFoundError reports that the input file does not exist. It is checked
// before any parsing so the caller can print a remediation hint instead of a
// raw I/O error.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("SARIF file not found: %s", e.Path)
}

// ParseError reports that the input file exists but is not a usable report:
// either the bytes are not valid JSON or the document lacks the expected
// runs/results structure. A missing key is a fatal structural error, never an
// empty report.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse SARIF report %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
