// Package report aggregates the reporting view into chart series.
package report

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/ctryrisk/pkg/schema"
)

// Kind is the chart type a series is meant for.
type Kind string

const (
	Line Kind = "line"
	Bar  Kind = "bar"
	Pie  Kind = "pie"
)

// Point is a label with its count.
type Point struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Chart is an aggregated series with rendering hints.
type Chart struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`

	// XLabel and YLabel name the axes of line and bar charts.
	XLabel string `json:"xLabel,omitempty"`
	YLabel string `json:"yLabel,omitempty"`

	// ValueLabels asks to print counts on bars.
	ValueLabels bool `json:"valueLabels,omitempty"`

	// PercentFormat is a printf format for pie slice shares.
	PercentFormat string `json:"percentFormat,omitempty"`

	Points []Point `json:"points"`
}

// Total is the sum of all counts.
func (c Chart) Total() int {
	var res int
	for _, p := range c.Points {
		res += p.Count
	}
	return res
}

// Report is the set of charts built from one view.
type Report struct {
	Cutoff  string `json:"cutoff"`
	Rows    int    `json:"rows"`
	Expired Chart  `json:"expired"`
	Active  Chart  `json:"active"`
	Ratings Chart  `json:"ratings"`
}

// Charts returns charts in rendering order.
func (r *Report) Charts() []Chart {
	return []Chart{r.Expired, r.Active, r.Ratings}
}

// Sink receives a finished report, usually to render it.
type Sink interface {
	Render(ctx context.Context, r *Report) error
}

// Build aggregates view rows:
//
//   - expired counts CountryCode of rows reviewed before cutoff;
//   - active counts Continent of rows with active country trade status;
//   - ratings counts Rating of all rows.
//
// Null labels are not counted. Points are sorted by count descending,
// ties by label.
func Build(rows []schema.ViewRow, cutoff time.Time) *Report {
	expired := make(map[string]int)
	active := make(map[string]int)
	ratings := make(map[string]int)
	cut := cutoff.Format(record.DateLayout)

	for _, r := range rows {
		// dates are stored as YYYY-MM-DD, so text order is date order
		if r.LastReviewDate != nil && *r.LastReviewDate < cut {
			add(expired, r.CountryCode)
		}
		if r.CountryTradeStatus != nil && *r.CountryTradeStatus == "active" {
			add(active, r.Continent)
		}
		add(ratings, r.Rating)
	}

	return &Report{
		Cutoff: cut,
		Rows:   len(rows),
		Expired: Chart{
			Name:   "expired",
			Title:  "Number of Counterparties having its review date expired by Country",
			Kind:   Line,
			XLabel: "Country",
			YLabel: "Count",
			Points: points(expired),
		},
		Active: Chart{
			Name:        "active",
			Title:       "Number of Active Counterparties per Continent",
			Kind:        Bar,
			XLabel:      "Continent",
			YLabel:      "Count",
			ValueLabels: true,
			Points:      points(active),
		},
		Ratings: Chart{
			Name:          "ratings",
			Title:         "Grouped Ratings number",
			Kind:          Pie,
			PercentFormat: "%1.1f%%",
			Points:        points(ratings),
		},
	}
}

func add(m map[string]int, label *string) {
	if label == nil {
		return
	}
	m[*label]++
}

func points(m map[string]int) []Point {
	res := make([]Point, 0, len(m))
	for k, v := range m {
		res = append(res, Point{Label: k, Count: v})
	}
	slices.SortFunc(res, func(a, b Point) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Label, b.Label)
	})
	return res
}
