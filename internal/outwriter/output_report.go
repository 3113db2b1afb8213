package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// weeklyCSVHeader is the column order of the CSV export.
var weeklyCSVHeader = []string{
	"date",
	"cost",
	"install",
	"roi_1",
	"roi_3",
	"roi_7",
	"roi_3_projected",
	"roi_7_projected",
}

// writeReportJSON handles opening the file and calling the JSON writer.
func writeReportJSON(summary schema.ReportSummary, weeks []schema.WeekRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONReport(w, summary, weeks)
	}, "Wrote JSON")
}

// writeReportCSV handles opening the file and calling the CSV writer.
func writeReportCSV(weeks []schema.WeekRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, weeklyCSVHeader, func(cw *csv.Writer) error {
			return writeCSVWeekRows(cw, weeks, cfg.Precision)
		})
	}, "Wrote CSV")
}

// writeReportTable generates and writes the human-readable report.
func writeReportTable(summary schema.ReportSummary, weeks []schema.WeekRow, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if err := writeSummaryBlock(summary, cfg, writer); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers, compacting them on narrow terminals
	headers := []string{"Date", "Cost", "Install", "1d ROI", "3d ROI", "7d ROI"}
	if terminalWidth(cfg) < 72 {
		headers = []string{"Date", "Cost", "Inst", "1d", "3d", "7d"}
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, w := range weeks {
		data = append(data, []string{
			schema.DateLabel(w.Date),
			schema.FormatMoney(w.Cost),
			schema.FormatThousands(w.Install),
			schema.FormatDecimalPercent(w.ROI1, cfg.Precision),
			markProjected(schema.FormatPercent(w.ROI3, cfg.Precision), w.ROI3Projected),
			markProjected(schema.FormatPercent(w.ROI7, cfg.Precision), w.ROI7Projected),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Projected values are marked with *. Report built in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeSummaryBlock prints the month-to-date totals with completion labels.
func writeSummaryBlock(summary schema.ReportSummary, cfg *contract.Config, w io.Writer) error {
	label := contract.GetColorLabel
	if !useColorOutput(cfg) {
		label = contract.GetPlainLabel
	}

	lines := []string{
		fmt.Sprintf("Month to date (as of %s)", summary.AsOf.Format("2006-01-02")),
		fmt.Sprintf("  Cost:      %s (%s of plan, %s)",
			schema.FormatMoney(summary.TotalCost),
			schema.FormatPercent(summary.CostCompletion, cfg.Precision),
			label(schema.CompletionOf(summary.CostCompletion))),
		fmt.Sprintf("  Install:   %s (%s of plan, %s)",
			schema.FormatThousands(summary.TotalInstall),
			schema.FormatPercent(summary.InstallCompletion, cfg.Precision),
			label(schema.CompletionOf(summary.InstallCompletion))),
		fmt.Sprintf("  1d ROI:    %s", schema.FormatPercent(summary.Total1ROI, cfg.Precision)),
		fmt.Sprintf("  7d ROI:    %s", schema.FormatDecimalPercent(summary.Total7ROI, cfg.Precision)),
		fmt.Sprintf("  7d ROI projection: %s (%s of plan, %s)",
			schema.FormatPercent(summary.Predicted7ROI, cfg.Precision),
			schema.FormatPercent(summary.ROI7Completion, cfg.Precision),
			label(schema.CompletionOf(summary.ROI7Completion))),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func markProjected(s string, projected bool) string {
	if projected {
		return s + "*"
	}
	return s
}

// writeCSVWeekRows writes the weekly rows in CSV format.
func writeCSVWeekRows(w *csv.Writer, weeks []schema.WeekRow, precision int) error {
	for _, row := range weeks {
		rec := []string{
			row.Date.Format("2006-01-02"),                       // Date
			row.Cost.StringFixed(2),                             // Cost
			strconv.FormatInt(row.Install, 10),                  // Install
			schema.FormatDecimalPercent(row.ROI1, precision),    // 1d ROI
			schema.FormatPercent(row.ROI3, precision),           // 3d ROI
			schema.FormatPercent(row.ROI7, precision),           // 7d ROI
			strconv.FormatBool(row.ROI3Projected),               // Projection flag
			strconv.FormatBool(row.ROI7Projected),               // Projection flag
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONReport writes the summary and weekly rows in JSON format.
func writeJSONReport(w io.Writer, summary schema.ReportSummary, weeks []schema.WeekRow) error {
	// 1. Prepare the data structure for JSON with completion labels added
	type JSONSummary struct {
		CostLabel    string `json:"cost_label"`
		InstallLabel string `json:"install_label"`
		ROI7Label    string `json:"roi_7_label"`
		schema.ReportSummary
	}

	output := struct {
		Summary JSONSummary      `json:"summary"`
		Weekly  []schema.WeekRow `json:"weekly"`
	}{
		Summary: JSONSummary{
			CostLabel:     contract.GetPlainLabel(schema.CompletionOf(summary.CostCompletion)),
			InstallLabel:  contract.GetPlainLabel(schema.CompletionOf(summary.InstallCompletion)),
			ROI7Label:     contract.GetPlainLabel(schema.CompletionOf(summary.ROI7Completion)),
			ReportSummary: summary,
		},
		Weekly: weeks,
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
