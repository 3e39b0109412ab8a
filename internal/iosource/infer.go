package iosource

import (
	"strconv"

	"github.com/gnames/ctryrisk/pkg/record"
)

type kind int

const (
	kindInt kind = iota
	kindFloat
	kindString
)

// inferKinds finds the narrowest type that fits every non-empty value
// of a column.
func inferKinds(header []string, rows [][]string) []kind {
	res := make([]kind, len(header))
	for j, name := range header {
		if name == record.ID {
			res[j] = kindString
			continue
		}
		k := kindInt
		for _, row := range rows {
			if j >= len(row) || row[j] == "" {
				continue
			}
			k = max(k, cellKind(row[j]))
			if k == kindString {
				break
			}
		}
		res[j] = k
	}
	return res
}

func cellKind(s string) kind {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return kindFloat
	}
	return kindString
}

func convert(s string, k kind) any {
	if s == "" {
		return nil
	}
	switch k {
	case kindInt:
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	case kindFloat:
		f, _ := strconv.ParseFloat(s, 64)
		return f
	default:
		return s
	}
}
