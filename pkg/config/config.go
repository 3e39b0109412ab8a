// Package config provides configuration management for ctryrisk.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Source: path, delimiter
//   - Database: driver, path, host, port, user, password, database,
//     ssl_mode, batch_size
//   - Pipeline: keep_singleton_ids
//   - Report: cutoff, sink
//   - Log: level, format, destination
//   - General: with_progress
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//   - Pipeline.DateLayouts (built-in list, can be replaced by Option only)
//
// # Environment Variables
//
// Use CTRYRISK_ prefix with underscores for nesting:
//
//	CTRYRISK_SOURCE_PATH=./assets/test_data_dummy.csv
//	CTRYRISK_DATABASE_DRIVER=sqlite
//	CTRYRISK_DATABASE_PATH=db_data_analyst_test.db
//	CTRYRISK_REPORT_CUTOFF=2024-07-20
//	CTRYRISK_LOG_LEVEL=info
package config

import "time"

// CutoffLayout is the date format of Report.Cutoff.
const CutoffLayout = "2006-01-02"

// Config represents the complete ctryrisk configuration.
type Config struct {
	// Source describes the tabular input file.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Database contains relational store settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Pipeline contains settings of cleaning and identity resolution.
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`

	// Report contains settings of the reporting view and charts.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress shows progress bars during database writes.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SourceConfig describes where input rows come from.
type SourceConfig struct {
	// Path to a delimited file with a header row.
	Path string `mapstructure:"path" yaml:"path"`

	// Delimiter is a single character separating fields.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// DatabaseConfig contains relational store parameters.
type DatabaseConfig struct {
	// Driver is either "sqlite" (default) or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file. The default name is fixed,
	// so every run replaces the tables of the same file.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent in one INSERT.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PipelineConfig contains settings of the cleaning stages.
type PipelineConfig struct {
	// KeepSingletonIDs leaves identity keys that occur only once
	// untouched. When false, every key gets an occurrence suffix,
	// including keys without collisions ("X" becomes "X0").
	KeepSingletonIDs bool `mapstructure:"keep_singleton_ids" yaml:"keep_singleton_ids"`

	// DateLayouts are tried in order when LastReviewDate is parsed.
	DateLayouts []string `mapstructure:"-" yaml:"-"`
}

// ReportConfig contains settings of the reporting view.
type ReportConfig struct {
	// Cutoff is a YYYY-MM-DD date. Reviews before it are expired.
	Cutoff string `mapstructure:"cutoff" yaml:"cutoff"`

	// Sink is where charts go: "text", "json" or "none".
	Sink string `mapstructure:"sink" yaml:"sink"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// DefaultDateLayouts are accepted formats of review dates.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			Path:      "./assets/test_data_dummy.csv",
			Delimiter: ",",
		},
		Database: DatabaseConfig{
			Driver:    "sqlite",
			Path:      "db_data_analyst_test.db",
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "ctryrisk",
			SSLMode:   "disable",
			BatchSize: 1_000,
		},
		Pipeline: PipelineConfig{
			DateLayouts: DefaultDateLayouts,
		},
		Report: ReportConfig{
			Cutoff: "2024-07-20",
			Sink:   "text",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: true,
	}

	return res
}

// CutoffDate returns Report.Cutoff as time. Options guarantee the
// value parses, so the error is dropped.
func (c *Config) CutoffDate() time.Time {
	res, _ := time.Parse(CutoffLayout, c.Report.Cutoff)
	return res
}
