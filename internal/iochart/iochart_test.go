package iochart_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gnames/ctryrisk/internal/iochart"
	"github.com/gnames/ctryrisk/pkg/report"
	"github.com/gnames/ctryrisk/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *report.Report {
	s := func(v string) *string { return &v }
	rows := []schema.ViewRow{
		{
			Country: schema.Country{
				ID: "a0", CountryCode: s("italy"),
				Continent: s("Europe"), Rating: s("a"),
			},
			LastReviewDate:     s("2024-01-01"),
			CountryTradeStatus: s("active"),
		},
		{
			Country: schema.Country{
				ID: "b0", CountryCode: s("italy"),
				Continent: s("Europe"), Rating: s("a"),
			},
			LastReviewDate:     s("2024-02-01"),
			CountryTradeStatus: s("active"),
		},
		{
			Country: schema.Country{
				ID: "c0", CountryCode: s("japan"),
				Continent: s("Asia"), Rating: s("b"),
			},
			LastReviewDate: s("2025-02-01"),
		},
	}
	return report.Build(rows, time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC))
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	err := iochart.New("text", &buf).Render(context.Background(), sample())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Number of Counterparties having its review date expired by Country (line)")
	assert.Contains(t, out, "Number of Active Counterparties per Continent (bar)")
	assert.Contains(t, out, "Grouped Ratings number (pie)")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "33.3%")

	var italy string
	for line := range strings.SplitSeq(out, "\n") {
		if strings.Contains(line, "italy") {
			italy = line
		}
	}
	assert.True(t, strings.HasSuffix(italy, " 2"), italy)
}

func TestTextSinkEmpty(t *testing.T) {
	var buf bytes.Buffer
	rep := report.Build(nil, time.Now())
	err := iochart.New("text", &buf).Render(context.Background(), rep)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "no data"))
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	err := iochart.New("json", &buf).Render(context.Background(), sample())
	require.NoError(t, err)

	var got report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2024-07-20", got.Cutoff)
	assert.Equal(t, report.Bar, got.Active.Kind)
	assert.Equal(t, []report.Point{{Label: "Europe", Count: 2}}, got.Active.Points)
	assert.Equal(t, "%1.1f%%", got.Ratings.PercentFormat)
}

func TestNoneSink(t *testing.T) {
	var buf bytes.Buffer
	err := iochart.New("none", &buf).Render(context.Background(), sample())
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
