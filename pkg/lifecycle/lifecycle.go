// Package lifecycle defines contracts of the pipeline parts that talk
// to the outside world: the tabular source, the relational store and
// the whole run.
package lifecycle

import (
	"context"
	"time"

	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/record"
	"github.com/gnames/ctryrisk/pkg/report"
	"github.com/gnames/ctryrisk/pkg/schema"
)

// Source reads the whole input table into memory.
type Source interface {
	// Read returns all rows of the source. A missing source gives a
	// SourceUnavailable error.
	Read(ctx context.Context) ([]record.Record, error)
}

// Persister stores the relational form of the working set and reads
// the reporting view back.
//
// Persist replaces all three tables inside one transaction. A reader
// sees either the previous snapshot or the new one, and any failure
// leaves the previous snapshot in place.
type Persister interface {
	Persist(ctx context.Context, tables *schema.Tables) error

	// View returns the inner join of Country, Review and Trade.
	View(ctx context.Context) ([]schema.ViewRow, error)
}

// Pipeline runs the whole ingestion from the source to the store.
type Pipeline interface {
	// Run reads, cleans, enriches and persists the data.
	Run(ctx context.Context, cfg *config.Config) (*Summary, error)

	// Report builds charts from the persisted view.
	Report(ctx context.Context, cfg *config.Config) (*report.Report, error)
}

// Summary counts what happened to rows during a run.
type Summary struct {
	// Read is the number of rows in the source.
	Read int

	// NullKeys is the number of rows removed for missing Id.
	NullKeys int

	// Duplicates is the number of exact duplicate rows removed.
	Duplicates int

	// RenamedKeys is the number of Id values that got a suffix.
	RenamedKeys int

	// BadDates is the number of review dates that could not be parsed.
	BadDates int

	// UnknownCountries is the number of rows the lookup could not
	// classify.
	UnknownCountries int

	// Stored is the number of rows written to each table.
	Stored int

	// Dropped lists source columns without a place in the schema.
	Dropped []string

	Duration time.Duration
}
