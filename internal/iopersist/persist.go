// Package iopersist implements lifecycle.Persister with GORM over a
// db.Operator connection. This is an impure I/O package.
package iopersist

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/ctryrisk/internal/iodb"
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/gnames/ctryrisk/pkg/db"
	"github.com/gnames/ctryrisk/pkg/lifecycle"
	"github.com/gnames/ctryrisk/pkg/schema"
	"gorm.io/driver/postgres"
	sqlitedrv "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// persister implements the lifecycle.Persister interface.
type persister struct {
	operator     db.Operator
	batchSize    int
	withProgress bool
}

// NewPersister creates a Persister on top of a connected operator.
func NewPersister(op db.Operator, cfg *config.Config) lifecycle.Persister {
	res := &persister{
		operator:     op,
		batchSize:    cfg.Database.BatchSize,
		withProgress: cfg.WithProgress,
	}
	if res.batchSize < 1 {
		res.batchSize = config.New().Database.BatchSize
	}
	return res
}

// Persist validates the tables and replaces Country, Trade and Review
// in a single transaction: drop, create with foreign keys, insert
// Country, Trade, then Review.
func (p *persister) Persist(
	ctx context.Context,
	t *schema.Tables,
) error {
	if err := schema.Validate(t); err != nil {
		return err
	}

	gormDB, err := p.gorm()
	if err != nil {
		return err
	}

	err = gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceTables(tx); err != nil {
			return err
		}
		if err := insert(tx, t.Countries, p); err != nil {
			return err
		}
		if err := insert(tx, t.Trades, p); err != nil {
			return err
		}
		return insert(tx, t.Reviews, p)
	})
	if err != nil {
		return err
	}

	slog.Info("Tables replaced",
		"driver", p.operator.Driver(),
		"countries", len(t.Countries),
		"trades", len(t.Trades),
		"reviews", len(t.Reviews),
	)
	return nil
}

// View runs the reporting join.
func (p *persister) View(ctx context.Context) ([]schema.ViewRow, error) {
	exists, err := p.operator.TableExists(ctx, schema.Country{}.TableName())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NoTablesError()
	}

	gormDB, err := p.gorm()
	if err != nil {
		return nil, err
	}

	var rows []schema.ViewRow
	err = gormDB.WithContext(ctx).Raw(schema.ViewQuery()).Scan(&rows).Error
	if err != nil {
		return nil, ViewQueryError(err)
	}
	return rows, nil
}

func (p *persister) gorm() (*gorm.DB, error) {
	sqlDB := p.operator.DB()
	if sqlDB == nil {
		return nil, iodb.NotConnectedError()
	}

	var dialector gorm.Dialector
	switch p.operator.Driver() {
	case "postgres":
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	default:
		dialector = &sqlitedrv.Dialector{Conn: sqlDB}
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}

func replaceTables(tx *gorm.DB) error {
	for _, name := range schema.DropOrder() {
		q := "DROP TABLE IF EXISTS " + schema.Quote(name)
		if err := tx.Exec(q).Error; err != nil {
			return DropTableError(name, err)
		}
	}
	for _, m := range schema.AllModels() {
		if err := tx.Exec(m.TableDDL()).Error; err != nil {
			return CreateTableError(m.TableName(), err)
		}
	}
	return nil
}

func insert[T schema.DDLGenerator](tx *gorm.DB, rows []T, p *persister) error {
	if len(rows) == 0 {
		return nil
	}
	var zero T
	table := zero.TableName()

	var bar *pb.ProgressBar
	if p.withProgress {
		bar = pb.Full.Start(len(rows))
		bar.Set("prefix", "Inserting "+table+": ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	for i := 0; i < len(rows); i += p.batchSize {
		end := min(i+p.batchSize, len(rows))
		batch := rows[i:end]

		if err := tx.Table(table).Create(&batch).Error; err != nil {
			if kind, ok := iodb.ConstraintKind(err); ok {
				return schema.ConstraintViolationError(table, kind, err)
			}
			return InsertError(table, err)
		}

		if bar != nil {
			bar.Add(len(batch))
		}
	}
	return nil
}
