package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// steadySeries builds a constant daily series: 1000 cost, 100 installs,
// pay sums 50/70/90 and feed ROI 5%/7%/9% every day of [from, to].
func steadySeries(from, to time.Time) []schema.MetricRow {
	var rows []schema.MetricRow
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		rows = append(rows, schema.MetricRow{
			Date:    d,
			Cost:    decimal.NewFromInt(1000),
			Install: 100,
			PaySum1: decimal.NewFromInt(50),
			PaySum3: decimal.NewFromInt(70),
			PaySum7: decimal.NewFromInt(90),
			ROI1:    decimal.RequireFromString("0.05"),
			ROI3:    decimal.RequireFromString("0.07"),
			ROI7:    decimal.RequireFromString("0.09"),
		})
	}
	return rows
}

func steadyContext() ReportContext {
	return ReportContext{
		Rows: steadySeries(day(2024, 2, 1), day(2024, 3, 21)),
		AsOf: day(2024, 3, 22),
		Targets: schema.Targets{
			Cost:    decimal.NewFromInt(60000),
			Install: 6000,
			ROI7:    decimal.RequireFromString("0.15"),
		},
	}
}

func TestBuildReportSummaryTotals(t *testing.T) {
	summary, _, err := BuildReport(steadyContext())
	require.NoError(t, err)

	assert.Equal(t, day(2024, 3, 22), summary.AsOf)
	assert.Equal(t, day(2024, 3, 1), summary.MonthStart)

	// 21 March rows, 1000 cost and 100 installs each
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(21000)))
	assert.Equal(t, int64(2100), summary.TotalInstall)

	require.True(t, summary.Total1ROI.Valid)
	assert.True(t, summary.Total1ROI.Value.Equal(decimal.RequireFromString("0.05")))

	// 16 rows are old enough for a matured 7d window: 0.09 exactly
	assert.True(t, summary.Total7ROI.Equal(decimal.RequireFromString("0.09")))

	// 0.05 * (70/50) * (90/70) collapses to the true 7d ROI
	require.True(t, summary.Predicted7ROI.Valid)
	f, _ := summary.Predicted7ROI.Value.Float64()
	assert.InDelta(t, 0.09, f, 0.0001)

	require.True(t, summary.CostCompletion.Valid)
	assert.True(t, summary.CostCompletion.Value.Equal(decimal.RequireFromString("0.35")))
	require.True(t, summary.InstallCompletion.Valid)
	assert.True(t, summary.InstallCompletion.Value.Equal(decimal.RequireFromString("0.35")))
	require.True(t, summary.ROI7Completion.Valid)
	assert.True(t, summary.ROI7Completion.Value.Equal(decimal.RequireFromString("0.6")))
}

func TestBuildReportWeeklyShape(t *testing.T) {
	_, weeks, err := BuildReport(steadyContext())
	require.NoError(t, err)
	require.Len(t, weeks, 7)

	// Seven consecutive days ascending, ending the day before as-of
	for i, w := range weeks {
		assert.Equal(t, day(2024, 3, 15+i), w.Date)
		assert.True(t, w.Cost.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, int64(100), w.Install)
	}
}

func TestBuildReportMaturityBoundaries(t *testing.T) {
	_, weeks, err := BuildReport(steadyContext())
	require.NoError(t, err)

	// 3d ROI is observed through as-of minus two days (3/20)
	for _, w := range weeks[:6] {
		assert.False(t, w.ROI3Projected, "date %s", w.Date)
		assert.True(t, w.ROI3.Value.Equal(decimal.RequireFromString("0.07")))
	}
	assert.True(t, weeks[6].ROI3Projected)
	require.True(t, weeks[6].ROI3.Valid)
	f3, _ := weeks[6].ROI3.Value.Float64()
	assert.InDelta(t, 0.07, f3, 0.0001) // 0.05 * 1.4

	// 7d ROI is observed through as-of minus six days (3/16)
	for _, w := range weeks[:2] {
		assert.False(t, w.ROI7Projected, "date %s", w.Date)
		assert.True(t, w.ROI7.Value.Equal(decimal.RequireFromString("0.09")))
	}
	for _, w := range weeks[2:] {
		assert.True(t, w.ROI7Projected, "date %s", w.Date)
		require.True(t, w.ROI7.Valid)
		f7, _ := w.ROI7.Value.Float64()
		assert.InDelta(t, 0.09, f7, 0.0001)
	}
}

func TestBuildReportMissingDay(t *testing.T) {
	ctx := steadyContext()
	var rows []schema.MetricRow
	for _, r := range ctx.Rows {
		if r.Date.Equal(day(2024, 3, 18)) {
			continue
		}
		rows = append(rows, r)
	}
	ctx.Rows = rows

	_, _, err := BuildReport(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDay)
	assert.ErrorContains(t, err, "2024-03-18")
}

func TestBuildReportShortMonthHasZeroTotal7ROI(t *testing.T) {
	ctx := ReportContext{
		Rows: steadySeries(day(2024, 2, 1), day(2024, 3, 4)),
		AsOf: day(2024, 3, 5),
	}

	summary, weeks, err := BuildReport(ctx)
	require.NoError(t, err)
	require.Len(t, weeks, 7)

	// Four month-to-date rows is below the maturity threshold
	assert.True(t, summary.Total7ROI.IsZero())
	// The rest of the summary still computes
	require.True(t, summary.Total1ROI.Valid)
	assert.True(t, summary.Total1ROI.Value.Equal(decimal.RequireFromString("0.05")))
}

func TestBuildReportZeroDenominatorPropagates(t *testing.T) {
	ctx := steadyContext()
	for i := range ctx.Rows {
		ctx.Rows[i].PaySum1 = decimal.Zero
	}

	summary, weeks, err := BuildReport(ctx)
	require.NoError(t, err)

	// The 3-over-1 window sums a zero denominator, so the prediction is
	// undetermined rather than zero or infinite.
	assert.False(t, summary.Predicted7ROI.Valid)

	// Projected weekly cells inherit the invalid coefficient; observed
	// cells are untouched.
	assert.True(t, weeks[6].ROI3Projected)
	assert.False(t, weeks[6].ROI3.Valid)
	assert.False(t, weeks[0].ROI7Projected)
	assert.True(t, weeks[0].ROI7.Valid)
}

func TestBuildReportNoTargetsMeansUnknownCompletion(t *testing.T) {
	ctx := steadyContext()
	ctx.Targets = schema.Targets{}

	summary, _, err := BuildReport(ctx)
	require.NoError(t, err)
	assert.False(t, summary.CostCompletion.Valid)
	assert.False(t, summary.InstallCompletion.Valid)
	assert.False(t, summary.ROI7Completion.Valid)
}

func TestBuildReportZeroCostMonth(t *testing.T) {
	ctx := steadyContext()
	for i := range ctx.Rows {
		ctx.Rows[i].Cost = decimal.Zero
		ctx.Rows[i].PaySum1 = decimal.Zero
		ctx.Rows[i].PaySum3 = decimal.Zero
		ctx.Rows[i].PaySum7 = decimal.Zero
	}

	summary, _, err := BuildReport(ctx)
	require.NoError(t, err)
	assert.False(t, summary.Total1ROI.Valid)
	assert.True(t, summary.Total7ROI.IsZero())
	assert.False(t, summary.Predicted7ROI.Valid)
}
