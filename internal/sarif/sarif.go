// Package sarif holds the subset of the SARIF 2.1.0 schema this tool reads.
// Only the fields Qodana populates and the viewer displays are modeled; the
// decoder ignores everything else in the document. Value types throughout:
// absent fields decode to zero values and the loader applies the defaults.
package sarif

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool Tool `json:"tool"`
	// Results is nil when the key is missing, which is a structural error,
	// as opposed to an empty slice for a clean report.
	Results []Result `json:"results"`
}

type Tool struct {
	Driver ToolComponent `json:"driver"`
}

// ToolComponent identifies the analyzer that produced the run.
type ToolComponent struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	// StartLine is 1-based; 0 means the region carried no line number.
	StartLine int `json:"startLine"`
}
