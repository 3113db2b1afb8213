// Package parquet exports report data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// SummaryRecord is the month-to-date summary, one record per report run.
type SummaryRecord struct {
	// AsOf is the report anchor date
	AsOf time.Time `parquet:"as_of,snappy"`

	// TotalCost is the month-to-date spend
	TotalCost float64 `parquet:"total_cost,snappy"`

	// TotalInstall is the month-to-date install count
	TotalInstall int64 `parquet:"total_install,snappy"`

	// Total1ROI is the month-to-date first-day ROI (nullable when spend is zero)
	Total1ROI *float64 `parquet:"total_1roi,optional,snappy"`

	// Total7ROI is the matured seven-day ROI, zero when fewer than a week of data exists
	Total7ROI float64 `parquet:"total_7roi,snappy"`

	// Predicted7ROI is the extrapolated month seven-day ROI (nullable when a window degenerates)
	Predicted7ROI *float64 `parquet:"predicted_7roi,optional,snappy"`

	// CostCompletion is spend over plan (nullable when no plan is set)
	CostCompletion *float64 `parquet:"cost_completion,optional,snappy"`

	// InstallCompletion is installs over plan (nullable when no plan is set)
	InstallCompletion *float64 `parquet:"install_completion,optional,snappy"`

	// ROI7Completion is predicted ROI over plan (nullable when no plan is set)
	ROI7Completion *float64 `parquet:"roi7_completion,optional,snappy"`
}

// WeekRecord is one row of the trailing-week table.
type WeekRecord struct {
	// Date is the metric day
	Date time.Time `parquet:"date,snappy"`

	// Cost is the day's spend
	Cost float64 `parquet:"cost,snappy"`

	// Install is the day's install count
	Install int64 `parquet:"install,snappy"`

	// ROI1 is the observed first-day ROI
	ROI1 float64 `parquet:"roi_1,snappy"`

	// ROI3 is the three-day ROI (nullable when the projection window degenerates)
	ROI3 *float64 `parquet:"roi_3,optional,snappy"`

	// ROI7 is the seven-day ROI (nullable when the projection window degenerates)
	ROI7 *float64 `parquet:"roi_7,optional,snappy"`

	// ROI3Projected marks the ROI3 value as extrapolated rather than observed
	ROI3Projected bool `parquet:"roi_3_projected,snappy"`

	// ROI7Projected marks the ROI7 value as extrapolated rather than observed
	ROI7Projected bool `parquet:"roi_7_projected,snappy"`
}

// WriteSummaryParquet writes the report summary to a Parquet file.
func WriteSummaryParquet(summary schema.ReportSummary, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the SummaryRecord struct tags
	writer := parquet.NewGenericWriter[SummaryRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write([]SummaryRecord{ConvertSummary(summary)}); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteWeeklyParquet writes the trailing-week rows to a Parquet file.
func WriteWeeklyParquet(weeks []schema.WeekRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the WeekRecord struct tags
	writer := parquet.NewGenericWriter[WeekRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertWeekRows(weeks)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSummary converts a schema.ReportSummary to a SummaryRecord for Parquet export.
func ConvertSummary(s schema.ReportSummary) SummaryRecord {
	cost, _ := s.TotalCost.Float64()
	total7, _ := s.Total7ROI.Float64()
	return SummaryRecord{
		AsOf:              s.AsOf,
		TotalCost:         cost,
		TotalInstall:      s.TotalInstall,
		Total1ROI:         ratioPtr(s.Total1ROI),
		Total7ROI:         total7,
		Predicted7ROI:     ratioPtr(s.Predicted7ROI),
		CostCompletion:    ratioPtr(s.CostCompletion),
		InstallCompletion: ratioPtr(s.InstallCompletion),
		ROI7Completion:    ratioPtr(s.ROI7Completion),
	}
}

// ConvertWeekRows converts schema.WeekRow values to WeekRecord for Parquet export.
func ConvertWeekRows(weeks []schema.WeekRow) []WeekRecord {
	result := make([]WeekRecord, len(weeks))
	for i, w := range weeks {
		cost, _ := w.Cost.Float64()
		roi1, _ := w.ROI1.Float64()
		result[i] = WeekRecord{
			Date:          w.Date,
			Cost:          cost,
			Install:       w.Install,
			ROI1:          roi1,
			ROI3:          ratioPtr(w.ROI3),
			ROI7:          ratioPtr(w.ROI7),
			ROI3Projected: w.ROI3Projected,
			ROI7Projected: w.ROI7Projected,
		}
	}
	return result
}

func ratioPtr(r schema.Ratio) *float64 {
	if !r.Valid {
		return nil
	}
	v, _ := r.Value.Float64()
	return &v
}
