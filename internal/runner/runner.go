// Package runner assembles the report pipeline: fetch metrics, compute the
// summary and weekly table, render messages and fan them out to every
// configured chat destination.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KobeFor3ver/goatgames-daily-report/core"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// Runner drives one report run against external collaborators.
type Runner struct {
	Source  contract.MetricSource
	Chart   contract.ChartRenderer
	Images  contract.ImageHost
	Factory contract.NotifierFactory
	Config  *contract.Config
	Log     *logrus.Entry
}

// Compute fetches the time series and builds the report. The fetch range
// starts at the first day of the previous month so every trailing window has
// data even on the first of a month.
func (r *Runner) Compute(ctx context.Context) (schema.ReportSummary, []schema.WeekRow, error) {
	asOf := schema.Day(r.Config.AsOf)
	from := firstOfPreviousMonth(asOf)

	rows, err := r.Source.FetchDaily(ctx, from, asOf)
	if err != nil {
		return schema.ReportSummary{}, nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	r.Log.WithFields(logrus.Fields{
		"rows": len(rows),
		"from": from.Format("2006-01-02"),
		"to":   asOf.Format("2006-01-02"),
	}).Info("fetched daily metrics")

	return core.BuildReport(core.ReportContext{
		Rows:    rows,
		AsOf:    asOf,
		Targets: r.Config.Targets,
	})
}

// Deliver sends the summary text and the weekly markdown to every destination.
// Destinations fail independently; the run errors only when no destination
// accepted the report.
func (r *Runner) Deliver(ctx context.Context, summary schema.ReportSummary, weeks []schema.WeekRow) error {
	textTitle := fmt.Sprintf("Daily report %s", summary.AsOf.Format("2006-01-02"))
	text := SummaryText(summary, r.Config.Precision)
	markdown := WeeklyMarkdown(weeks, r.trendChartURL(ctx, weeks), r.Config.Precision)

	if r.Config.DryRun {
		fmt.Println(text)
		fmt.Println(markdown)
		return nil
	}

	delivered := 0
	for _, dest := range r.Config.Destinations {
		log := r.Log.WithField("destination", dest.Name)
		notifier := r.Factory(dest)

		okText, err := notifier.SendText(ctx, textTitle, text)
		if err != nil {
			log.WithError(err).Error("failed to send summary text")
		}
		okMD, err := notifier.SendMarkdown(ctx, "Last 7 days", markdown)
		if err != nil {
			log.WithError(err).Error("failed to send weekly markdown")
		}

		if okText || okMD {
			delivered++
		}
		log.WithFields(logrus.Fields{"text": okText, "markdown": okMD}).Info("delivery finished")
	}

	if len(r.Config.Destinations) > 0 && delivered == 0 {
		return fmt.Errorf("no destination accepted the report")
	}
	return nil
}

// trendChartURL renders and uploads the trend chart. Chart problems degrade
// the message to text-only rather than blocking delivery.
func (r *Runner) trendChartURL(ctx context.Context, weeks []schema.WeekRow) string {
	if r.Chart == nil || r.Images == nil {
		return ""
	}
	image, err := r.Chart.RenderTrend(ctx, weeks)
	if err != nil {
		r.Log.WithError(err).Warn("failed to render trend chart")
		return ""
	}
	url, err := r.Images.Upload(ctx, image, "roi-trend.png")
	if err != nil {
		r.Log.WithError(err).Warn("failed to upload trend chart")
		return ""
	}
	return url
}

// SummaryText renders the month-to-date block of the text message.
func SummaryText(s schema.ReportSummary, precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Month to date %s to %s:\n",
		schema.DateLabel(s.MonthStart), schema.DateLabel(s.AsOf))
	fmt.Fprintf(&b, "Cost: %s\tplan completion: %s\n",
		schema.FormatMoney(s.TotalCost), schema.FormatPercent(s.CostCompletion, precision))
	fmt.Fprintf(&b, "Install: %s\tplan completion: %s\n",
		schema.FormatThousands(s.TotalInstall), schema.FormatPercent(s.InstallCompletion, precision))
	fmt.Fprintf(&b, "1d ROI (complete): %s\n", schema.FormatPercent(s.Total1ROI, precision))
	fmt.Fprintf(&b, "7d ROI (matured): %s\n", schema.FormatDecimalPercent(s.Total7ROI, precision))
	fmt.Fprintf(&b, "7d ROI projection: %s\tplan completion: %s",
		schema.FormatPercent(s.Predicted7ROI, precision), schema.FormatPercent(s.ROI7Completion, precision))
	return b.String()
}

// WeeklyMarkdown renders the weekly table as a markdown message, with the
// trend chart embedded when one was uploaded.
func WeeklyMarkdown(weeks []schema.WeekRow, chartURL string, precision int) string {
	var b strings.Builder
	b.WriteString("**Last 7 days:**\n\n")
	b.WriteString("| date | cost | install | 1d ROI | 3d ROI | 7d ROI |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, w := range weeks {
		roi3 := schema.FormatPercent(w.ROI3, precision)
		if w.ROI3Projected {
			roi3 += "*"
		}
		roi7 := schema.FormatPercent(w.ROI7, precision)
		if w.ROI7Projected {
			roi7 += "*"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			schema.DateLabel(w.Date),
			schema.FormatMoney(w.Cost),
			schema.FormatThousands(w.Install),
			schema.FormatDecimalPercent(w.ROI1, precision),
			roi3, roi7)
	}
	b.WriteString("\n\\* projected\n")
	if chartURL != "" {
		fmt.Fprintf(&b, "\n**1d ROI and 7d ROI (with projection) trend:**\n![image](%s)\n", chartURL)
	}
	return b.String()
}

func firstOfPreviousMonth(asOf time.Time) time.Time {
	firstOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0)
}
