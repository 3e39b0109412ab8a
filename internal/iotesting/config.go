// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gnames/ctryrisk/pkg/config"
)

const (
	// TestDatabaseName is the PostgreSQL database used by integration
	// tests, so they never touch a real one.
	TestDatabaseName = "ctryrisk_test"

	// PgHostEnv enables PostgreSQL tests when set.
	PgHostEnv = "CTRYRISK_TEST_PG_HOST"
)

// SqliteConfig returns a configuration with a SQLite file in a
// temporary directory. Progress bars are off.
func SqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath(filepath.Join(dir, "risk.db")),
		config.OptWithProgress(false),
	})
	return cfg
}

// PostgresConfig returns a configuration for a PostgreSQL test
// database. The test is skipped in short mode or when PgHostEnv is
// not set. CTRYRISK_TEST_PG_PORT, CTRYRISK_TEST_PG_USER and
// CTRYRISK_TEST_PG_PASSWORD override the defaults.
func PostgresConfig(t *testing.T) *config.Config {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	host := os.Getenv(PgHostEnv)
	if host == "" {
		t.Skipf("Skipping PostgreSQL test, %s is not set", PgHostEnv)
	}

	opts := []config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptDatabaseDriver("postgres"),
		config.OptDatabaseHost(host),
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptWithProgress(false),
	}
	if p, err := strconv.Atoi(os.Getenv("CTRYRISK_TEST_PG_PORT")); err == nil {
		opts = append(opts, config.OptDatabasePort(p))
	}
	if u := os.Getenv("CTRYRISK_TEST_PG_USER"); u != "" {
		opts = append(opts, config.OptDatabaseUser(u))
	}
	if pw := os.Getenv("CTRYRISK_TEST_PG_PASSWORD"); pw != "" {
		opts = append(opts, config.OptDatabasePassword(pw))
	}

	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

// WriteFile writes content to a file in a temporary directory and
// returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
