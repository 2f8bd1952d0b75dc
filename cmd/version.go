// File: cmd/version.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the application version.
// This value is intended to be set at build time using ldflags.
// Example: go build -ldflags "-X github.com/alnovis/qodana-report/cmd.Version=1.0.0"
var Version = "dev"

// newVersionCmd reports the build version. Kept as a subcommand alongside
// the --version flag since CI scripts use both forms.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the qodana-report version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qodana-report version %s\n", Version)
		},
	}
}
