// File: internal/sarif/decode.go
package sarif

import (
	"errors"
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

// Structural errors. A document that parses as JSON but lacks the expected
// shape is rejected with one of these rather than treated as an empty report.
var (
	ErrNoRuns    = errors.New("document has no runs")
	ErrNoResults = errors.New("first run has no results key")
)

// Decode parses a SARIF document from raw bytes and verifies the structure
// the viewer depends on: at least one run, and a results array (possibly
// empty) on the first run. Later runs are ignored.
func Decode(data []byte) (*Log, error) {
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(log.Runs) == 0 {
		return nil, ErrNoRuns
	}
	if log.Runs[0].Results == nil {
		return nil, ErrNoResults
	}
	return &log, nil
}

// DecodeFile reads and decodes the report at path. The caller is expected to
// have established that the file exists; errors here mean it was unreadable
// or malformed.
func DecodeFile(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
