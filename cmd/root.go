// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alnovis/qodana-report/internal/config"
	"github.com/alnovis/qodana-report/internal/observability"
	"github.com/alnovis/qodana-report/internal/render"
	"github.com/alnovis/qodana-report/internal/report"
)

// configContextKey carries the loaded *config.Config through the command
// context from PersistentPreRunE to RunE.
type configContextKey struct{}

// NewRootCommand builds a fresh root command. Each call returns an
// independent instance so flag state never leaks between executions,
// which matters for tests.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile  string
		severity string
		group    bool
		quiet    bool
		jsonOut  bool
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "qodana-report [sarif-file]",
		Short: "Render a Qodana SARIF report as readable console output",
		Long: `qodana-report parses a Qodana SARIF report and displays its findings,
most severe first, with optional filtering by minimum severity, grouping
by rule, and a summary-only quiet mode.

The report path defaults to ` + config.DefaultReportPath + `.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Errors are rendered by Execute with remediation hints where we
		// have them, so cobra must not print its own copy.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				// Fall back to a minimal logger so the failure is reportable.
				observability.InitializeLogger(config.LoggerConfig{
					Level: "warn", Format: "console", ServiceName: "qodana-report",
				})
				return err
			}
			if verbose {
				cfg.Logger.Level = "debug"
			}
			observability.InitializeLogger(cfg.Logger)
			cmd.SetContext(context.WithValue(cmd.Context(), configContextKey{}, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}

			path := cfg.Report.Path
			if len(args) == 1 {
				path = args[0]
			}
			path, err = homedir.Expand(path)
			if err != nil {
				return fmt.Errorf("failed to resolve report path: %w", err)
			}

			mode := displayMode(jsonOut, quiet, group)
			logger.Debug("Rendering report",
				zap.String("path", path),
				zap.String("mode", mode),
				zap.String("severity_threshold", severity))

			loader := report.NewLoader(cfg.ShortcutTable(), logger)
			findings, err := loader.Load(path)
			if err != nil {
				return err
			}

			if severity != "" && report.ThresholdRank(severity) == report.RankUnrecognized {
				// Lenient by contract: an unknown threshold disables
				// filtering rather than failing the invocation.
				logger.Warn("Unrecognized severity threshold, filtering disabled",
					zap.String("severity", severity))
			}
			findings = report.Filter(findings, severity)

			renderer, err := render.New(cmd.OutOrStdout(), mode)
			if err != nil {
				return err
			}
			return renderer.Render(findings)
		},
	}

	rootCmd.Flags().StringVarP(&severity, "severity", "s", "", "minimum severity to display: error, warning or note")
	rootCmd.Flags().BoolVarP(&group, "group", "g", false, "group findings by rule")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "show only the summary line")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as a JSON document")
	rootCmd.MarkFlagsMutuallyExclusive("json", "group")
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./qodana-report.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.SetVersionTemplate("qodana-report version {{.Version}}\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// displayMode resolves the mode flags. Quiet wins over group when both are
// set; json cannot coexist with either, enforced at flag level.
func displayMode(jsonOut, quiet, group bool) string {
	switch {
	case jsonOut:
		return render.ModeJSON
	case quiet:
		return render.ModeQuiet
	case group:
		return render.ModeGroup
	default:
		return render.ModeFlat
	}
}

// getConfigFromContext retrieves the configuration stashed by the
// persistent pre-run hook.
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configContextKey{}).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration missing from command context")
	}
	return cfg, nil
}

// PrintError writes the user-facing diagnostic for a failed invocation.
// A missing report file gets a remediation hint; anything else prints as a
// plain error line.
func PrintError(w io.Writer, err error) {
	var notFound *report.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(w, notFound.Error())
		fmt.Fprintf(w, "Run 'qodana scan --results-dir=%s' first.\n", config.DefaultResultsDir)
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// Execute runs the root command. Any failure, bad flags, a missing report
// or malformed input, exits the process with status 1. Success and --help
// exit with status 0.
func Execute() {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	observability.Sync()
	if err != nil {
		PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
