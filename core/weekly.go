package core

import (
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// weekLength is the number of days the weekly table covers: as-of minus seven
// days through as-of minus one day, ascending.
const weekLength = 7

// buildWeekly constructs the weekly table. Each row re-derives its own
// extrapolation coefficients over windows anchored at the row's date, so the
// maturity boundary is evaluated independently per row; do not reuse the
// report-global coefficients here.
func buildWeekly(ctx ReportContext) ([]schema.WeekRow, error) {
	asOf := schema.Day(ctx.AsOf)
	idx := ctx.byDay()

	roi3Cutoff := asOf.AddDate(0, 0, -2)
	roi7Cutoff := asOf.AddDate(0, 0, -6)

	weeks := make([]schema.WeekRow, 0, weekLength)
	for i := 0; i < weekLength; i++ {
		date := asOf.AddDate(0, 0, -(weekLength - i))
		row, ok := idx[date]
		if !ok {
			return nil, missingDay(date)
		}

		week := schema.WeekRow{
			Date:    date,
			Cost:    row.Cost,
			Install: row.Install,
			ROI1:    row.ROI1,
		}

		c31 := threeOverOne(ctx.Rows, date, rowNear31, rowFar31)
		c73 := sevenOverThree(ctx.Rows, date, rowNear73, rowFar73)
		roi1 := schema.ValidRatio(row.ROI1)

		if !date.After(roi3Cutoff) {
			week.ROI3 = schema.ValidRatio(row.ROI3)
		} else {
			week.ROI3 = roi1.Mul(c31)
			week.ROI3Projected = true
		}

		if !date.After(roi7Cutoff) {
			week.ROI7 = schema.ValidRatio(row.ROI7)
		} else {
			week.ROI7 = roi1.Mul(c31).Mul(c73)
			week.ROI7Projected = true
		}

		weeks = append(weeks, week)
	}
	return weeks, nil
}
