// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alnovis/qodana-report/internal/report"
)

// DefaultResultsDir is the --results-dir Qodana scans are expected to use.
// DefaultReportPath is where such a scan leaves its report; it is used
// whenever no path argument is given and no config overrides it.
const (
	DefaultResultsDir = "target/qodana-results"
	DefaultReportPath = DefaultResultsDir + "/qodana.sarif.json"
)

// envPrefix namespaces the environment variables viper reads, e.g.
// QODANA_REPORT_LOGGER_LEVEL overrides logger.level.
const envPrefix = "QODANA_REPORT"

// Config is the full application configuration. Display behavior (severity
// threshold, grouping, quiet) is deliberately not configurable here: those
// are per-invocation choices and stay on the command line.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
}

// LoggerConfig holds all the configuration for the diagnostic logger.
// The console sink writes to stderr so report text on stdout stays clean;
// the optional rotating file sink is enabled by setting log_file.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// ReportConfig controls where the report is read from and how locations are
// shortened for display.
type ReportConfig struct {
	// Path is the report file read when the invocation passes no argument.
	Path string `mapstructure:"path" yaml:"path"`
	// Shortcuts replaces the builtin path-shortening table when set. Entries
	// are applied in order, first match wins.
	Shortcuts []report.PathShortcut `mapstructure:"shortcuts" yaml:"shortcuts"`
}

// SetDefaults initializes default values for all configuration parameters.
// The defaults reproduce the tool's documented behavior exactly; a config
// file only ever changes behavior on purpose.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "qodana-report")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Report --
	v.SetDefault("report.path", DefaultReportPath)
	v.SetDefault("report.shortcuts", report.DefaultShortcuts())
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Cannot happen with the defaults above.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load builds the effective configuration: defaults, overlaid by the config
// file (the explicit cfgFile if given, else ./qodana-report.yaml when
// present), overlaid by QODANA_REPORT_* environment variables. A missing
// default config file is fine; an unreadable or invalid explicit one is not.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("qodana-report")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only the implicit config file is allowed to be absent.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the rest of the program cannot honor.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be 'console' or 'json', got %q", c.Logger.Format)
	}
	if c.Report.Path == "" {
		return fmt.Errorf("report.path must not be empty")
	}
	for i, s := range c.Report.Shortcuts {
		if s.Prefix == "" {
			return fmt.Errorf("report.shortcuts[%d].prefix must not be empty", i)
		}
	}
	return nil
}

// ShortcutTable returns the effective path-shortening table.
func (c *Config) ShortcutTable() report.ShortcutTable {
	return report.ShortcutTable(c.Report.Shortcuts)
}
