package iosource

import (
	"fmt"

	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
)

// SourceUnavailableError is returned when the input file does not
// exist. Nothing is written in this case.
func SourceUnavailableError(path string, err error) error {
	msg := `Input file <em>%s</em> is not found, nothing to do

<em>How to fix:</em>
  Point to the data with <em>--source</em> or
  <em>CTRYRISK_SOURCE_PATH</em>`

	return &gn.Error{
		Code: errcode.SourceUnavailableError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("source %s is unavailable: %w", path, err),
	}
}

// SourceReadError is returned for unreadable or malformed input.
func SourceReadError(path string, line int, err error) error {
	msg := "Cannot read <em>%s</em> at line %d"

	return &gn.Error{
		Code: errcode.SourceReadError,
		Msg:  msg,
		Vars: []any{path, line},
		Err:  fmt.Errorf("cannot read %s:%d: %w", path, line, err),
	}
}

// SourceHeaderError is returned when the header row is missing or
// invalid.
func SourceHeaderError(path, reason string) error {
	msg := "Bad header in <em>%s</em>: %s"

	return &gn.Error{
		Code: errcode.SourceHeaderError,
		Msg:  msg,
		Vars: []any{path, reason},
		Err:  fmt.Errorf("bad header in %s: %s", path, reason),
	}
}
