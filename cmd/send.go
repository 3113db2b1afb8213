package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
)

// sendCmd builds the report and delivers it to every destination.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Build the daily report and deliver it to all chat destinations.",
	Long: `Fetch daily ad metrics, compute the report, render the trend chart and
deliver a summary text message plus a weekly markdown table to every
configured webhook destination.

Destinations fail independently: one unreachable group does not block the
others, and the command fails only when nobody received the report.

Examples:
  # Deliver today's report
  goatreport send

  # Preview the messages without posting anything
  goatreport send --dry-run

  # Deliver a backfilled report
  goatreport send --as-of 2024-03-15`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		log := logrus.NewEntry(logrus.StandardLogger())
		r := newRunner(log)

		summary, weeks, err := r.Compute(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to build report", err)
		}
		return r.Deliver(rootCtx, summary, weeks)
	},
}
