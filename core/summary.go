package core

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// minMatureDays is the smallest month-to-date sample for which a fully
// observed 7-day ROI is reported at all.
const minMatureDays = 7

// buildSummary computes the month-to-date block of the report.
func buildSummary(ctx ReportContext) schema.ReportSummary {
	asOf := schema.Day(ctx.AsOf)
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	var monthRows []schema.MetricRow
	for _, r := range ctx.Rows {
		d := schema.Day(r.Date)
		if d.Year() == asOf.Year() && d.Month() == asOf.Month() && !d.After(asOf) {
			monthRows = append(monthRows, r)
		}
	}

	summary := schema.ReportSummary{
		AsOf:       asOf,
		MonthStart: monthStart,
	}

	totalPay1 := decimal.Zero
	for _, r := range monthRows {
		summary.TotalCost = summary.TotalCost.Add(r.Cost)
		summary.TotalInstall += r.Install
		totalPay1 = totalPay1.Add(r.PaySum1)
	}

	if !summary.TotalCost.IsZero() {
		summary.Total1ROI = schema.ValidRatio(totalPay1.Div(summary.TotalCost))
	}

	summary.Total7ROI = total7ROI(monthRows, asOf)

	c31 := threeOverOne(ctx.Rows, asOf, globalNear31, globalFar31)
	c73 := sevenOverThree(ctx.Rows, asOf, globalNear73, globalFar73)
	summary.Predicted7ROI = summary.Total1ROI.Mul(c31).Mul(c73)

	summary.CostCompletion = completion(summary.TotalCost, ctx.Targets.Cost)
	summary.InstallCompletion = completion(
		decimal.NewFromInt(summary.TotalInstall), decimal.NewFromInt(ctx.Targets.Install))
	summary.ROI7Completion = completion(summary.Total7ROI, ctx.Targets.ROI7)

	return summary
}

// total7ROI reports the fully observed month-to-date 7-day ROI. With fewer
// than seven days of data the value is a defined zero, not an error; with
// enough data it covers only rows dated at least six days before as-of, since
// younger cohorts have immature pay_sum_7, and rounds to four places.
func total7ROI(monthRows []schema.MetricRow, asOf time.Time) decimal.Decimal {
	if len(monthRows) < minMatureDays {
		return decimal.Zero
	}

	cutoff := asOf.AddDate(0, 0, -6)
	paySum := decimal.Zero
	costSum := decimal.Zero
	for _, r := range monthRows {
		if schema.Day(r.Date).After(cutoff) {
			continue
		}
		paySum = paySum.Add(r.PaySum7)
		costSum = costSum.Add(r.Cost)
	}
	if costSum.IsZero() {
		return decimal.Zero
	}
	return paySum.Div(costSum).Round(4)
}

// completion measures an actual total against its planned target.
func completion(actual, planned decimal.Decimal) schema.Ratio {
	if planned.IsZero() {
		return schema.Ratio{}
	}
	return schema.ValidRatio(actual.Div(planned))
}
