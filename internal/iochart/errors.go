package iochart

import (
	"fmt"

	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
)

// RenderError is returned when charts cannot be produced.
func RenderError(sink string, err error) error {
	msg := "Cannot render charts with <em>%s</em> sink"

	return &gn.Error{
		Code: errcode.ReportRenderError,
		Msg:  msg,
		Vars: []any{sink},
		Err:  fmt.Errorf("cannot render %s charts: %w", sink, err),
	}
}
