// ./main.go
package main

import (
	"github.com/alnovis/qodana-report/cmd"
)

// main is the entry point for the qodana-report CLI.
func main() {
	// Execute handles command-line parsing, configuration and rendering,
	// and maps failures to a non-zero exit status.
	cmd.Execute()
}
