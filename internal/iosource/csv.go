// Package iosource reads the input table from a delimited file.
// This is an impure I/O package that implements lifecycle.Source.
package iosource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/lifecycle"
	"github.com/gnames/ctryrisk/pkg/record"
)

const bom = "\uFEFF"

type csvSource struct {
	path  string
	comma rune
}

// NewCSV creates a source for a delimited file with a header row.
func NewCSV(cfg *config.SourceConfig) lifecycle.Source {
	comma, _ := utf8.DecodeRuneInString(cfg.Delimiter)
	if comma == utf8.RuneError {
		comma = ','
	}
	return &csvSource{path: cfg.Path, comma: comma}
}

// Read loads all rows. Empty cells are null. A column becomes int64
// when all its values are integers, float64 when all are numbers and
// string otherwise. Id is always a string.
func (s *csvSource) Read(ctx context.Context) ([]record.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, SourceUnavailableError(s.path, err)
		}
		return nil, SourceReadError(s.path, 0, err)
	}
	defer f.Close()

	header, rows, err := s.readAll(ctx, f)
	if err != nil {
		return nil, err
	}

	kinds := inferKinds(header, rows)
	res := make([]record.Record, len(rows))
	for i, row := range rows {
		r := make(record.Record, len(header))
		for j, name := range header {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			r[name] = convert(cell, kinds[j])
		}
		res[i] = r
	}

	slog.Info("Source read",
		"path", s.path,
		"columns", len(header),
		"rows", len(res),
	)
	return res, nil
}

func (s *csvSource) readAll(
	ctx context.Context,
	r io.Reader,
) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = s.comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, SourceHeaderError(s.path, "file is empty")
	}
	if err != nil {
		return nil, nil, SourceReadError(s.path, 1, err)
	}
	header, err = cleanHeader(header)
	if err != nil {
		return nil, nil, SourceHeaderError(s.path, err.Error())
	}

	var rows [][]string
	for line := 2; ; line++ {
		if line%10_000 == 0 {
			if err = ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, SourceReadError(s.path, line, err)
		}
		if len(row) > len(header) {
			return nil, nil, SourceReadError(s.path, line,
				errors.New("row has more fields than the header"))
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

func cleanHeader(header []string) ([]string, error) {
	res := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, errors.New("header has an empty column name at " +
				strconv.Itoa(i+1))
		}
		if _, ok := seen[h]; ok {
			return nil, errors.New("header repeats column " + h)
		}
		seen[h] = struct{}{}
		res[i] = h
	}
	return res, nil
}
