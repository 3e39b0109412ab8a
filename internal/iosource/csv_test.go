package iosource_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/ctryrisk/internal/iosource"
	"github.com/gnames/ctryrisk/internal/iotesting"
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, content, delim string) ([]record.Record, error) {
	t.Helper()
	path := iotesting.WriteFile(t, "data.csv", content)
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSourcePath(path),
		config.OptSourceDelimiter(delim),
	})
	return iosource.NewCSV(&cfg.Source).Read(context.Background())
}

func TestRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	content := "\uFEFFId,CountryCode,TotalLimit,Rating,Notes\n" +
		"101,United States,1000,1.5,\n" +
		",Italy,2000,2,\"quoted, note\"\n" +
		"US1,Canada,,3.25,x\n"

	rs, err := read(t, content, ",")
	require.NoError(t, err)
	require.Len(t, rs, 3)

	assert.Equal(t, "101", rs[0]["Id"], "Id stays a string")
	assert.Equal(t, "United States", rs[0]["CountryCode"])
	assert.Equal(t, int64(1000), rs[0]["TotalLimit"])
	assert.Equal(t, 1.5, rs[0]["Rating"])
	assert.Nil(t, rs[0]["Notes"])
	_, ok := rs[0]["Notes"]
	assert.True(t, ok, "empty cell is a null field")

	assert.Nil(t, rs[1]["Id"])
	assert.Equal(t, float64(2), rs[1]["Rating"])
	assert.Equal(t, "quoted, note", rs[1]["Notes"])

	assert.Nil(t, rs[2]["TotalLimit"])
	assert.Equal(t, "x", rs[2]["Notes"])
}

func TestReadDelimiterAndShortRows(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	rs, err := read(t, "Id;Rating;Notes\na;b\n", ";")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "b", rs[0]["Rating"])
	assert.Nil(t, rs[0]["Notes"])
}

func TestReadErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tests := []struct {
		msg     string
		content string
		code    gn.ErrorCode
	}{
		{"empty file", "", errcode.SourceHeaderError},
		{"repeated column", "Id,Id\n1,2\n", errcode.SourceHeaderError},
		{"empty column name", "Id,,Rating\n", errcode.SourceHeaderError},
		{"too many fields", "Id,Rating\n1,2,3\n", errcode.SourceReadError},
		{"broken quotes", "Id,Rating\n1,\"a\"b\n", errcode.SourceReadError},
	}

	for _, v := range tests {
		_, err := read(t, v.content, ",")
		require.Error(t, err, v.msg)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}
}

func TestReadMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSourcePath(filepath.Join(t.TempDir(), "nope.csv")),
	})

	_, err := iosource.NewCSV(&cfg.Source).Read(context.Background())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SourceUnavailableError, gnErr.Code)
}
