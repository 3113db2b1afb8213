package cmd

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// watchCmd runs the delivery pipeline on a cron schedule.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run as a daemon and deliver the report on a cron schedule.",
	Long: `Stay resident and deliver the report to all destinations on a schedule.

Each tick anchors the report to the current date, so a daemon started once
keeps producing correct month-to-date numbers across month boundaries.

Examples:
  # Deliver every day at 09:00
  goatreport watch

  # Deliver on weekdays at 09:30
  goatreport watch --cron "30 9 * * 1-5"`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		log := logrus.NewEntry(logrus.StandardLogger())

		c := cron.New()
		_, err := c.AddFunc(cfg.CronSpec, func() {
			// Anchor each run to the wall clock, not the startup date.
			cfg.AsOf = time.Now()

			r := newRunner(log)
			summary, weeks, err := r.Compute(rootCtx)
			if err != nil {
				log.WithError(err).Error("failed to build report")
				return
			}
			if err := r.Deliver(rootCtx, summary, weeks); err != nil {
				log.WithError(err).Error("failed to deliver report")
			}
		})
		if err != nil {
			return err
		}

		log.WithField("cron", cfg.CronSpec).Info("report daemon started")
		c.Run()
		return nil
	},
}
