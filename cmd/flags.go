package cmd

import (
	"github.com/gnames/ctryrisk/pkg/config"
	"github.com/spf13/cobra"
)

// pipelineFlags holds flags shared by run and report.
type pipelineFlags struct {
	source    string
	delimiter string
	db        string
	driver    string
	keep      bool
	sink      string
	cutoff    string
}

func addDatabaseFlags(cmd *cobra.Command, f *pipelineFlags) {
	cmd.Flags().StringVar(
		&f.db, "db", "",
		"SQLite database file",
	)
	cmd.Flags().StringVar(
		&f.driver, "driver", "",
		"database driver: sqlite or postgres",
	)
}

func addReportFlags(cmd *cobra.Command, f *pipelineFlags) {
	cmd.Flags().StringVar(
		&f.sink, "sink", "",
		"where charts go: text, json or none",
	)
	cmd.Flags().StringVar(
		&f.cutoff, "cutoff", "",
		"reviews before this YYYY-MM-DD date are expired",
	)
}

// options converts explicitly set flags to config options.
func (f *pipelineFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	changed := cmd.Flags().Changed

	if changed("source") {
		res = append(res, config.OptSourcePath(f.source))
	}
	if changed("delimiter") {
		res = append(res, config.OptSourceDelimiter(f.delimiter))
	}
	if changed("db") {
		res = append(res, config.OptDatabasePath(f.db))
	}
	if changed("driver") {
		res = append(res, config.OptDatabaseDriver(f.driver))
	}
	if changed("keep-singleton-ids") {
		res = append(res, config.OptPipelineKeepSingletonIDs(f.keep))
	}
	if changed("sink") {
		res = append(res, config.OptReportSink(f.sink))
	}
	if changed("cutoff") {
		res = append(res, config.OptReportCutoff(f.cutoff))
	}
	return res
}
