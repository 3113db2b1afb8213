// Package outwriter has output and writer logic for terminal report runs.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/parquet"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// WriteReport outputs the report, dispatching based on the configured format.
func WriteReport(summary schema.ReportSummary, weeks []schema.WeekRow, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(summary, weeks, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSV(weeks, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeReportParquet(summary, weeks, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(summary, weeks, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportParquet exports the summary and weekly rows as two Parquet files
// under the configured output path prefix.
func writeReportParquet(summary schema.ReportSummary, weeks []schema.WeekRow, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if err := parquet.WriteSummaryParquet(summary, cfg.OutputFile+".summary.parquet"); err != nil {
		return err
	}
	return parquet.WriteWeeklyParquet(weeks, cfg.OutputFile+".weekly.parquet")
}
