/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/gnames/ctryrisk/internal/iochart"
	"github.com/gnames/ctryrisk/internal/iopipeline"
	"github.com/gnames/ctryrisk/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRunCmd() *cobra.Command {
	var flags pipelineFlags

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Import counterparties and replace stored tables",
		Long: `Import counterparties from a delimited file.

This command:
  1. Reads the source file with a header row
  2. Lowercases text, removes rows without Id and exact duplicates
  3. Makes Id values unique with occurrence suffixes
  4. Adds Continent (ISO lookup) and ContinentLoop (static table)
  5. Replaces Country, Trade and Review tables in one transaction
  6. Builds charts from the stored tables

A missing source file is reported and nothing is written.

The static continent table is kept in:
  ~/.config/ctryrisk/continents.yaml

Examples:
  # Import the default source into the default SQLite file
  ctryrisk run

  # Import a file with semicolons into another database
  ctryrisk run --source data.csv --delimiter ';' --db risk.db

  # Keep Id values that occur once
  ctryrisk run --keep-singleton-ids`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRun(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().StringVarP(
		&flags.source, "source", "s", "",
		"path to the source file",
	)
	runCmd.Flags().StringVarP(
		&flags.delimiter, "delimiter", "d", "",
		"field delimiter of the source file",
	)
	runCmd.Flags().BoolVarP(
		&flags.keep, "keep-singleton-ids", "k", false,
		"leave Id values without duplicates unchanged",
	)
	addDatabaseFlags(runCmd, &flags)
	addReportFlags(runCmd, &flags)

	return runCmd
}

func runRun(cmd *cobra.Command, flags *pipelineFlags) error {
	ctx := context.Background()

	if runOpts := flags.options(cmd); len(runOpts) > 0 {
		cfg.Update(runOpts)
	}

	p := iopipeline.New()
	_, err := p.Run(ctx, cfg)
	if err != nil {
		var gnErr *gn.Error
		if errors.As(err, &gnErr) && gnErr.Code == errcode.SourceUnavailableError {
			// nothing to import is not a failure
			gn.PrintErrorMessage(err)
			return nil
		}
		return err
	}

	rep, err := p.Report(ctx, cfg)
	if err != nil {
		return err
	}
	return iochart.New(cfg.Report.Sink, os.Stdout).Render(ctx, rep)
}
