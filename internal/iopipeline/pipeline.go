// Package iopipeline runs the country-risk pipeline: read, clean,
// enrich, persist, and build the report from the stored view. This is
// an impure package that wires pure stages to I/O implementations.
package iopipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/ctryrisk/internal/iodb"
	"github.com/gnames/ctryrisk/internal/iofs"
	"github.com/gnames/ctryrisk/internal/iopersist"
	"github.com/gnames/ctryrisk/internal/iosource"
	"github.com/gnames/ctryrisk/pkg/clean"
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/geo"
	"github.com/gnames/ctryrisk/pkg/lifecycle"
	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/ctryrisk/pkg/report"
	"github.com/gnames/ctryrisk/pkg/schema"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

type pipeline struct{}

// New creates a Pipeline.
func New() lifecycle.Pipeline {
	return &pipeline{}
}

// Run reads the source, transforms it and replaces the stored
// tables. A missing source stops the run before anything is written.
func (p *pipeline) Run(
	ctx context.Context,
	cfg *config.Config,
) (*lifecycle.Summary, error) {
	start := time.Now()

	rs, err := iosource.NewCSV(&cfg.Source).Read(ctx)
	if err != nil {
		return nil, err
	}
	gn.Info("Read <em>%s</em> rows from %s",
		humanize.Comma(int64(len(rs))), cfg.Source.Path)

	continents, err := continentTable(cfg)
	if err != nil {
		return nil, err
	}

	rs, sum := Transform(rs, cfg, continents)

	tables, err := schema.Split(rs)
	if err != nil {
		return nil, err
	}
	sum.Dropped = tables.Dropped
	if len(tables.Dropped) > 0 {
		gn.Warn("Columns without a place in the schema are dropped: %s",
			strings.Join(tables.Dropped, ", "))
	}

	op := iodb.NewOperator(cfg.Database.Driver)
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	defer op.Close()

	if err = iopersist.NewPersister(op, cfg).Persist(ctx, tables); err != nil {
		return nil, err
	}
	sum.Stored = len(tables.Countries)
	sum.Duration = time.Since(start)

	logSummary(sum)
	return sum, nil
}

// Report builds charts from the stored view.
func (p *pipeline) Report(
	ctx context.Context,
	cfg *config.Config,
) (*report.Report, error) {
	op := iodb.NewOperator(cfg.Database.Driver)
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	defer op.Close()

	rows, err := iopersist.NewPersister(op, cfg).View(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Reporting view loaded", "rows", len(rows))

	return report.Build(rows, cfg.CutoffDate()), nil
}

// Transform runs the pure stages in order: normalize, sanitize, drop
// duplicates, resolve identity, parse review dates and classify
// continents. It returns clean records and counts of each stage.
func Transform(
	rs []record.Record,
	cfg *config.Config,
	continents map[string]string,
) ([]record.Record, *lifecycle.Summary) {
	sum := &lifecycle.Summary{Read: len(rs)}

	rs = clean.Normalize(rs)
	rs, sum.NullKeys = clean.Sanitize(rs)
	rs, sum.Duplicates = clean.DropDuplicates(rs)
	rs, sum.RenamedKeys = clean.ResolveIdentity(rs, clean.IdentityOptions{
		KeepSingletons: cfg.Pipeline.KeepSingletonIDs,
	})

	rs, sum.BadDates = clean.ParseDates(
		rs, record.LastReviewDate, cfg.Pipeline.DateLayouts,
	)
	if sum.BadDates > 0 {
		gn.Warn("<em>%s</em> review dates could not be parsed and are empty",
			humanize.Comma(int64(sum.BadDates)))
	}

	rs, sum.UnknownCountries = geo.Classify(rs, record.CountryCode,
		geo.Classifier{Field: record.Continent, Strategy: geo.Lookup},
		geo.Classifier{Field: record.ContinentLoop, Strategy: geo.Table(continents)},
	)

	slog.Debug("Records transformed",
		"read", sum.Read,
		"null_keys", sum.NullKeys,
		"duplicates", sum.Duplicates,
		"renamed_keys", sum.RenamedKeys,
		"bad_dates", sum.BadDates,
		"unknown_countries", sum.UnknownCountries,
	)
	return rs, sum
}

func continentTable(cfg *config.Config) (map[string]string, error) {
	if cfg.HomeDir == "" {
		return geo.DefaultTable, nil
	}
	return iofs.LoadContinents(cfg.HomeDir)
}

func logSummary(sum *lifecycle.Summary) {
	slog.Info("Pipeline complete",
		"read", sum.Read,
		"null_keys", sum.NullKeys,
		"duplicates", sum.Duplicates,
		"renamed_keys", sum.RenamedKeys,
		"bad_dates", sum.BadDates,
		"unknown_countries", sum.UnknownCountries,
		"stored", sum.Stored,
		"duration", gnfmt.TimeString(sum.Duration.Seconds()),
	)
	gn.Info(`Import complete
Rows read: %s, without Id: %s, duplicates: %s, stored: %s.
Unknown countries: %s.
		Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(sum.Read)),
		humanize.Comma(int64(sum.NullKeys)),
		humanize.Comma(int64(sum.Duplicates)),
		humanize.Comma(int64(sum.Stored)),
		humanize.Comma(int64(sum.UnknownCountries)),
		gnfmt.TimeString(sum.Duration.Seconds()),
	)
}
