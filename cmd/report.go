package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/outwriter"
)

// reportCmd builds the report and prints it locally.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the daily report and print it to the terminal.",
	Long: `Fetch daily ad metrics, compute month-to-date totals and the trailing
seven-day table, and print the result locally without notifying anyone.

The weekly table marks projected ROI values with *: cohorts younger than
three (or seven) days are extrapolated from trailing-window coefficients
instead of observed revenue.

Examples:
  # Print today's report
  goatreport report

  # Rebuild the report for a past date
  goatreport report --as-of 2024-03-15

  # Export for analysis in pandas/DuckDB
  goatreport report --output parquet --output-file report

  # Machine-readable outputs
  goatreport report --output json
  goatreport report --output csv --output-file weekly.csv`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		log := logrus.NewEntry(logrus.StandardLogger())
		r := newRunner(log)

		start := time.Now()
		summary, weeks, err := r.Compute(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to build report", err)
		}
		return outwriter.WriteReport(summary, weeks, cfg, time.Since(start))
	},
}
