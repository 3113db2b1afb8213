package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

func testSummary() schema.ReportSummary {
	return schema.ReportSummary{
		AsOf:              time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		MonthStart:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalCost:         decimal.NewFromInt(14000),
		TotalInstall:      1400,
		Total1ROI:         schema.ValidRatio(decimal.NewFromFloat(0.05)),
		Total7ROI:         decimal.NewFromFloat(0.09),
		Predicted7ROI:     schema.ValidRatio(decimal.NewFromFloat(0.12)),
		CostCompletion:    schema.ValidRatio(decimal.NewFromFloat(0.47)),
		InstallCompletion: schema.ValidRatio(decimal.NewFromFloat(0.82)),
		ROI7Completion:    schema.Ratio{},
	}
}

func testWeeks() []schema.WeekRow {
	base := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	rows := make([]schema.WeekRow, 7)
	for i := range rows {
		rows[i] = schema.WeekRow{
			Date:          base.AddDate(0, 0, i),
			Cost:          decimal.NewFromInt(1000),
			Install:       100,
			ROI1:          decimal.NewFromFloat(0.05),
			ROI3:          schema.ValidRatio(decimal.NewFromFloat(0.07)),
			ROI7:          schema.ValidRatio(decimal.NewFromFloat(0.09)),
			ROI3Projected: i >= 6,
			ROI7Projected: i >= 2,
		}
	}
	return rows
}

func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 2,
		UseColors: false,
		Width:     100,
	}
}

func TestWriteCSVWeekRows(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, weeklyCSVHeader, func(cw *csv.Writer) error {
		return writeCSVWeekRows(cw, testWeeks(), 2)
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 8) // header + 7 rows

	assert.Equal(t, weeklyCSVHeader, records[0])
	assert.Equal(t, "2024-03-08", records[1][0])
	assert.Equal(t, "1000.00", records[1][1])
	assert.Equal(t, "100", records[1][2])
	assert.Equal(t, "5.00%", records[1][3])
	assert.Equal(t, "false", records[1][6])
	assert.Equal(t, "true", records[7][6])
	assert.Equal(t, "true", records[7][7])
}

func TestWriteJSONReportShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONReport(&buf, testSummary(), testWeeks()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	summary := got["summary"].(map[string]any)
	assert.Equal(t, "Unknown", summary["roi_7_label"])
	assert.Equal(t, "AtRisk", summary["cost_label"])
	assert.Equal(t, "Near", summary["install_label"])

	weekly := got["weekly"].([]any)
	require.Len(t, weekly, 7)
	first := weekly[0].(map[string]any)
	assert.Equal(t, false, first["roi_3_projected"])
}

func TestWriteReportTableContents(t *testing.T) {
	var buf bytes.Buffer
	err := writeReportTable(testSummary(), testWeeks(), testConfig(), time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Month to date (as of 2024-03-15)")
	assert.Contains(t, out, "14,000")
	assert.Contains(t, out, "3-8")
	assert.Contains(t, out, "9.00%*") // projected 7d ROI is marked
	assert.Contains(t, out, "n/a")
}

func TestWriteReportDispatchesCSVToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = t.TempDir() + "/weekly.csv"

	require.NoError(t, WriteReport(testSummary(), testWeeks(), cfg, time.Millisecond))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "date,cost,install"))
}

func TestWriteReportParquetRequiresFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = ""

	err := WriteReport(testSummary(), testWeeks(), cfg, time.Millisecond)
	assert.Error(t, err)
}

func TestMarkProjected(t *testing.T) {
	assert.Equal(t, "9.00%*", markProjected("9.00%", true))
	assert.Equal(t, "9.00%", markProjected("9.00%", false))
}
