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
	"os"

	"github.com/gnames/ctryrisk/internal/iochart"
	"github.com/gnames/ctryrisk/internal/iopipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var flags pipelineFlags

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Build charts from stored tables",
		Long: `Build charts from the tables stored by 'ctryrisk run'.

Charts:
  - expired reviews by country (line)
  - active country trade status by continent (bar)
  - rating distribution (pie)

The text sink draws charts in the terminal. The json sink prints
chart specifications for an external renderer.

Examples:
  ctryrisk report
  ctryrisk report --cutoff 2025-01-01 --sink json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReport(cmd, &flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addDatabaseFlags(reportCmd, &flags)
	addReportFlags(reportCmd, &flags)

	return reportCmd
}

func runReport(cmd *cobra.Command, flags *pipelineFlags) error {
	ctx := context.Background()

	if reportOpts := flags.options(cmd); len(reportOpts) > 0 {
		cfg.Update(reportOpts)
	}

	rep, err := iopipeline.New().Report(ctx, cfg)
	if err != nil {
		return err
	}
	return iochart.New(cfg.Report.Sink, os.Stdout).Render(ctx, rep)
}
