package iochart

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/ctryrisk/pkg/report"
)

type textSink struct {
	w     io.Writer
	width int
}

// Render draws every chart as rows of horizontal bars. Line and bar
// charts show counts, pie charts show shares.
func (s *textSink) Render(_ context.Context, r *report.Report) error {
	var b strings.Builder
	for i, c := range r.Charts() {
		if i > 0 {
			b.WriteString("\n")
		}
		s.chart(&b, c)
	}
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return RenderError("text", err)
	}
	return nil
}

func (s *textSink) chart(b *strings.Builder, c report.Chart) {
	fmt.Fprintf(b, "%s (%s)\n", c.Title, c.Kind)
	if len(c.Points) == 0 {
		b.WriteString("  no data\n")
		return
	}

	labelWidth, maxCount := 0, 0
	for _, p := range c.Points {
		labelWidth = max(labelWidth, len(p.Label))
		maxCount = max(maxCount, p.Count)
	}
	total := c.Total()

	for _, p := range c.Points {
		n := p.Count * s.width / maxCount
		if n == 0 {
			n = 1
		}
		fmt.Fprintf(b, "  %-*s %s", labelWidth, p.Label, strings.Repeat("#", n))

		switch c.Kind {
		case report.Pie:
			share := float64(p.Count) * 100 / float64(total)
			fmt.Fprintf(b, " "+c.PercentFormat, share)
		default:
			if c.ValueLabels || c.Kind == report.Line {
				fmt.Fprintf(b, " %s", humanize.Comma(int64(p.Count)))
			}
		}
		b.WriteString("\n")
	}
	if c.XLabel != "" {
		fmt.Fprintf(b, "  %s / %s, total %s\n",
			c.XLabel, c.YLabel, humanize.Comma(int64(total)))
	}
}
