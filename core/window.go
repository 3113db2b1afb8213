// Package core implements the ROI projection engine. It is pure computation:
// rows in, summary and weekly table out, with no clock, network or logging.
package core

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// Lookback offsets, in days, for the extrapolation windows. The near offset
// excludes the most recent days whose longer-horizon sums are not yet mature;
// the far offset keeps a trailing 14-day sample behind it.
const (
	globalNear31 = 3
	globalFar31  = 17
	globalNear73 = 7
	globalFar73  = 21

	rowNear31 = 2
	rowFar31  = 16
	rowNear73 = 6
	rowFar73  = 20
)

// metricField selects one revenue sum from a row.
type metricField func(schema.MetricRow) decimal.Decimal

func paySum1(r schema.MetricRow) decimal.Decimal { return r.PaySum1 }
func paySum3(r schema.MetricRow) decimal.Decimal { return r.PaySum3 }
func paySum7(r schema.MetricRow) decimal.Decimal { return r.PaySum7 }

// WindowCoefficient computes the ratio of two summed revenue metrics over the
// trailing window [anchor-far, anchor-near], both bounds inclusive. It is the
// single primitive behind every extrapolation coefficient: the global summary
// and each weekly row call it with their own anchor and offsets.
//
// A window with no rows, or whose denominator sums to zero, yields an invalid
// coefficient rather than a division error.
func WindowCoefficient(rows []schema.MetricRow, anchor time.Time, near, far int, num, den metricField) schema.Coefficient {
	lo := schema.Day(anchor).AddDate(0, 0, -far)
	hi := schema.Day(anchor).AddDate(0, 0, -near)

	numSum := decimal.Zero
	denSum := decimal.Zero
	seen := false
	for _, r := range rows {
		d := schema.Day(r.Date)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		seen = true
		numSum = numSum.Add(num(r))
		denSum = denSum.Add(den(r))
	}
	if !seen || denSum.IsZero() {
		return schema.Coefficient{}
	}
	return schema.Coefficient{Ratio: numSum.Div(denSum), Valid: true}
}

// threeOverOne extrapolates 1-day revenue to the 3-day horizon.
func threeOverOne(rows []schema.MetricRow, anchor time.Time, near, far int) schema.Coefficient {
	return WindowCoefficient(rows, anchor, near, far, paySum3, paySum1)
}

// sevenOverThree extrapolates 3-day revenue to the 7-day horizon.
func sevenOverThree(rows []schema.MetricRow, anchor time.Time, near, far int) schema.Coefficient {
	return WindowCoefficient(rows, anchor, near, far, paySum7, paySum3)
}
