package iodb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/ctryrisk/internal/iodb"
	"github.com/gnames/ctryrisk/internal/iotesting"
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperator(t *testing.T) {
	assert.Equal(t, "sqlite", iodb.NewOperator("sqlite").Driver())
	assert.Equal(t, "postgres", iodb.NewOperator("postgres").Driver())
	assert.Equal(t, "sqlite", iodb.NewOperator("").Driver())
}

func TestSqliteOperator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.SqliteConfig(t)

	op := iodb.NewSqliteOperator()
	assert.Nil(t, op.DB())

	_, err := op.TableExists(ctx, "Country")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)

	err = op.Connect(ctx, &cfg.Database)
	require.NoError(t, err)
	defer op.Close()

	require.NotNil(t, op.DB())
	_, err = os.Stat(cfg.Database.Path)
	assert.NoError(t, err, "file is created")

	var on int
	err = op.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&on)
	require.NoError(t, err)
	assert.Equal(t, 1, on)

	exists, err := op.TableExists(ctx, "Country")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = op.DB().ExecContext(ctx, `CREATE TABLE "Country" ("Id" TEXT)`)
	require.NoError(t, err)
	exists, err = op.TableExists(ctx, "Country")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, op.Close())
	assert.Nil(t, op.DB())
}

func TestSqliteOperatorBadPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePath(
			filepath.Join(t.TempDir(), "missing", "dir", "risk.db"),
		),
	})

	op := iodb.NewSqliteOperator()
	err := op.Connect(context.Background(), &cfg.Database)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
}

func TestPgxOperator(t *testing.T) {
	cfg := iotesting.PostgresConfig(t)

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err)
	defer op.Close()

	require.NotNil(t, op.DB())
	exists, err := op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPgxOperatorInvalidHost(t *testing.T) {
	cfg := iotesting.PostgresConfig(t)
	cfg.Update([]config.Option{config.OptDatabaseHost("invalid-host-that-does-not-exist")})

	op := iodb.NewPgxOperator()
	err := op.Connect(context.Background(), &cfg.Database)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
}
