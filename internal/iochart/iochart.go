// Package iochart renders reports: as text charts for a terminal or
// as JSON chart specifications for an external renderer.
package iochart

import (
	"io"

	"github.com/gnames/ctryrisk/pkg/report"
)

// New returns a sink by name: "text", "json" or "none".
func New(name string, w io.Writer) report.Sink {
	switch name {
	case "json":
		return &jsonSink{w: w}
	case "none":
		return noneSink{}
	default:
		return &textSink{w: w, width: 40}
	}
}
