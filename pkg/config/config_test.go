package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "ctryrisk"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "ctryrisk", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "ctryrisk", "config.yaml"),
		},
		{
			msg: "continents file",
			fn:  config.ContinentsFilePath,
			res: filepath.Join(tempHome, ".config", "ctryrisk", "continents.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Source defaults
		assert.Equal(t, "./assets/test_data_dummy.csv", cfg.Source.Path)
		assert.Equal(t, ",", cfg.Source.Delimiter)

		// Database defaults
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "db_data_analyst_test.db", cfg.Database.Path)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 1_000, cfg.Database.BatchSize)

		// Pipeline defaults follow the source behavior
		assert.False(t, cfg.Pipeline.KeepSingletonIDs)
		assert.Equal(t, config.DefaultDateLayouts, cfg.Pipeline.DateLayouts)

		// Report defaults
		assert.Equal(t, "2024-07-20", cfg.Report.Cutoff)
		assert.Equal(t, "text", cfg.Report.Sink)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.True(t, cfg.WithProgress)
	})

	t.Run("cutoff date", func(t *testing.T) {
		want := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, cfg.CutoffDate())
	})
}

func TestOptionSourceDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets semicolon", ";", ";"},
		{"understands escaped tab", `\t`, "\t"},
		{"ignores empty", "", ","},
		{"ignores several characters", ";;", ","},
		{"ignores quote", `"`, ","},
		{"ignores newline", "\n", ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptSourceDelimiter(tt.input)})
			assert.Equal(t, tt.expected, cfg.Source.Delimiter)
		})
	}
}

func TestOptionDatabaseDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets postgres", "postgres", "postgres"},
		{"normalizes to lowercase", "  PostGres ", "postgres"},
		{"sets sqlite", "sqlite", "sqlite"},
		{"ignores invalid value", "mysql", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseDriver(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Driver)
		})
	}
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseBatchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid size", 500, 500},
		{"ignores zero", 0, 1_000},
		{"ignores negative", -3, 1_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseBatchSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.BatchSize)
		})
	}
}

func TestOptionReportCutoff(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid date", "2025-01-31", "2025-01-31"},
		{"trims whitespace", " 2025-01-31 ", "2025-01-31"},
		{"ignores wrong format", "31/01/2025", "2024-07-20"},
		{"ignores impossible date", "2025-02-30", "2024-07-20"},
		{"ignores empty", "", "2024-07-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptReportCutoff(tt.input)})
			assert.Equal(t, tt.expected, cfg.Report.Cutoff)
		})
	}
}

func TestOptionReportSink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets json", "json", "json"},
		{"sets none", "NONE", "none"},
		{"ignores invalid value", "png", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptReportSink(tt.input)})
			assert.Equal(t, tt.expected, cfg.Report.Sink)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid log level - debug", "debug", "debug"},
		{"sets valid log level - error", "error", "error"},
		{"normalizes to lowercase", "WARN", "warn"},
		{"ignores invalid value", "verbose", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionPipelineDateLayouts(t *testing.T) {
	t.Run("replaces layouts", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptPipelineDateLayouts([]string{"02/01/2006", " "}),
		})
		assert.Equal(t, []string{"02/01/2006"}, cfg.Pipeline.DateLayouts)
	})

	t.Run("ignores empty list", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptPipelineDateLayouts(nil)})
		assert.Equal(t, config.DefaultDateLayouts, cfg.Pipeline.DateLayouts)
	})
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptSourcePath("/data/risk.csv"),
			config.OptDatabasePath("/tmp/risk.db"),
			config.OptPipelineKeepSingletonIDs(true),
			config.OptLogLevel("debug"),
			config.OptWithProgress(false),
		}

		cfg.Update(opts)

		assert.Equal(t, "/data/risk.csv", cfg.Source.Path)
		assert.Equal(t, "/tmp/risk.db", cfg.Database.Path)
		assert.True(t, cfg.Pipeline.KeepSingletonIDs)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.False(t, cfg.WithProgress)

		// Unchanged fields keep defaults
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabasePath("first.db"),
			config.OptDatabasePath("second.db"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.db", cfg.Database.Path)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptSourcePath("in.csv"),
			config.OptSourceDelimiter(";"),
			config.OptDatabaseDriver("postgres"),
			config.OptDatabasePath("out.db"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(200),
			config.OptPipelineKeepSingletonIDs(true),
			config.OptReportCutoff("2023-12-31"),
			config.OptReportSink("json"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptWithProgress(false),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Pipeline.KeepSingletonIDs,
			newCfg.Pipeline.KeepSingletonIDs)
		assert.Equal(t, original.Report, newCfg.Report)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.WithProgress, newCfg.WithProgress)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptPipelineDateLayouts([]string{"2006"}),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, config.DefaultDateLayouts, newCfg.Pipeline.DateLayouts)
	})
}
