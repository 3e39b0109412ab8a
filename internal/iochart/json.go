package iochart

import (
	"context"
	"io"

	"github.com/gnames/ctryrisk/pkg/report"
	"github.com/gnames/gnfmt"
)

type jsonSink struct {
	w io.Writer
}

// Render writes the report as pretty JSON.
func (s *jsonSink) Render(_ context.Context, r *report.Report) error {
	enc := gnfmt.GNjson{Pretty: true}
	res, err := enc.Encode(r)
	if err != nil {
		return RenderError("json", err)
	}
	res = append(res, '\n')
	if _, err = s.w.Write(res); err != nil {
		return RenderError("json", err)
	}
	return nil
}

type noneSink struct{}

func (noneSink) Render(context.Context, *report.Report) error {
	return nil
}
