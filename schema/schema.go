// Package schema has configs, models and shared helpers for all parts of goatreport.
package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricRow is one calendar day of aggregated advertising performance from the
// analytics feed. Rows are deduplicated and aggregated to daily granularity
// upstream; the feed may carry extra fields, which are ignored.
type MetricRow struct {
	Date    time.Time       `json:"date"`      // Calendar day the row describes (unique per row)
	Cost    decimal.Decimal `json:"cost"`      // Acquisition spend for the day
	Install int64           `json:"install"`   // Installs attributed to the day
	PaySum1 decimal.Decimal `json:"pay_sum_1"` // Revenue observed within 1 day of install
	PaySum3 decimal.Decimal `json:"pay_sum_3"` // Revenue observed within 3 days of install
	PaySum7 decimal.Decimal `json:"pay_sum_7"` // Revenue observed within 7 days of install
	ROI1    decimal.Decimal `json:"roi_1"`     // pay_sum_1 / cost, precomputed by the feed
	ROI3    decimal.Decimal `json:"roi_3"`     // pay_sum_3 / cost, precomputed by the feed
	ROI7    decimal.Decimal `json:"roi_7"`     // pay_sum_7 / cost, precomputed by the feed
}

// Coefficient is a trailing-window extrapolation ratio used to project an
// immature revenue sum to a longer horizon. Valid is false when the lookback
// window held no rows or its denominator summed to zero; an invalid
// coefficient must propagate through any projection built on it.
type Coefficient struct {
	Ratio decimal.Decimal `json:"ratio"`
	Valid bool            `json:"valid"`
}

// Ratio is an ROI value that may be undetermined. Undetermined values render
// as "n/a" and are never collapsed to zero.
type Ratio struct {
	Value decimal.Decimal `json:"value"`
	Valid bool            `json:"valid"`
}

// ValidRatio wraps a determined decimal value.
func ValidRatio(v decimal.Decimal) Ratio {
	return Ratio{Value: v, Valid: true}
}

// Mul multiplies a ratio by a coefficient, propagating invalidity.
func (r Ratio) Mul(c Coefficient) Ratio {
	if !r.Valid || !c.Valid {
		return Ratio{}
	}
	return Ratio{Value: r.Value.Mul(c.Ratio), Valid: true}
}

// Targets are the externally configured monthly goals the summary is
// measured against.
type Targets struct {
	Cost    decimal.Decimal `json:"cost"`
	Install int64           `json:"install"`
	ROI7    decimal.Decimal `json:"roi_7"`
}

// ReportSummary holds month-to-date totals and their completion against the
// monthly targets. All ratios are exact decimals; percent formatting is a
// presentation concern.
type ReportSummary struct {
	AsOf       time.Time `json:"as_of"`
	MonthStart time.Time `json:"month_start"`

	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalInstall int64           `json:"total_install"`

	Total1ROI Ratio `json:"total_1roi"`
	// Total7ROI is zero when fewer than seven month-to-date rows exist;
	// otherwise it covers only rows old enough for pay_sum_7 to be fully
	// observed, rounded to 4 decimal places.
	Total7ROI     decimal.Decimal `json:"total_7roi"`
	Predicted7ROI Ratio           `json:"predicted_7roi"`

	CostCompletion    Ratio `json:"cost_completion"`
	InstallCompletion Ratio `json:"install_completion"`
	ROI7Completion    Ratio `json:"roi_7_completion"`
}

// WeekRow is one of the seven most recent calendar days in the weekly table.
// ROI3 and ROI7 are observed where the cohort is mature and projected
// otherwise; the Projected flags record which path was taken.
type WeekRow struct {
	Date    time.Time       `json:"date"`
	Cost    decimal.Decimal `json:"cost"`
	Install int64           `json:"install"`

	ROI1 decimal.Decimal `json:"roi_1"`
	ROI3 Ratio           `json:"roi_3"`
	ROI7 Ratio           `json:"roi_7"`

	ROI3Projected bool `json:"roi_3_projected"`
	ROI7Projected bool `json:"roi_7_projected"`
}

// Day truncates a time to midnight UTC. All window arithmetic and row lookups
// compare calendar days in this normalized form.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
