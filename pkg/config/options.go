package config

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourcePath sets the path to the input file.
func OptSourcePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source Path", s) {
			c.Source.Path = s
		}
	}
}

// OptSourceDelimiter sets the field delimiter of the input file.
// Only a single character is accepted, "\t" is understood as TAB.
func OptSourceDelimiter(s string) Option {
	if s == `\t` {
		s = "\t"
	}
	return func(c *Config) {
		if isValidDelimiter(s) {
			c.Source.Delimiter = s
		}
	}
}

// OptDatabaseDriver sets the relational store driver.
// Valid values: "sqlite", "postgres".
func OptDatabaseDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Driver", s) {
			c.Database.Driver = s
		}
	}
}

// OptDatabasePath sets the SQLite database file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per INSERT batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptPipelineKeepSingletonIDs decides if identity keys without
// collisions stay unchanged.
func OptPipelineKeepSingletonIDs(b bool) Option {
	return func(c *Config) {
		c.Pipeline.KeepSingletonIDs = b
	}
}

// OptPipelineDateLayouts replaces the list of accepted review date
// formats. Runtime-only field - not in ToOptions().
func OptPipelineDateLayouts(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, v := range ss {
			if strings.TrimSpace(v) != "" {
				res = append(res, v)
			}
		}
		if len(res) > 0 {
			c.Pipeline.DateLayouts = res
		}
	}
}

// OptReportCutoff sets the date before which reviews are expired.
// Format: YYYY-MM-DD.
func OptReportCutoff(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidDate("Report Cutoff", s) {
			c.Report.Cutoff = s
		}
	}
}

// OptReportSink sets where charts are sent.
// Valid values: "text", "json", "none".
func OptReportSink(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Sink", s) {
			c.Report.Sink = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptWithProgress toggles progress bars.
func OptWithProgress(b bool) Option {
	return func(c *Config) {
		c.WithProgress = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func isValidDate(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	if _, err := time.Parse(CutoffLayout, s); err != nil {
		gn.Warn("<em>%s</em> must be a YYYY-MM-DD date, ignoring '%s'", name, s)
		return false
	}
	return true
}

func isValidDelimiter(s string) bool {
	if utf8.RuneCountInString(s) != 1 || s == "\n" || s == "\r" || s == `"` {
		gn.Warn("<em>Source Delimiter</em> must be a single character, ignoring '%s'", s)
		return false
	}
	return true
}
