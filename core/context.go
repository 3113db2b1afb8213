package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// ErrMissingDay reports that the feed held no row for a date the weekly table
// must cover. Wrap targets should match with errors.Is.
var ErrMissingDay = errors.New("no metric row for required day")

// ReportContext carries everything one report computation needs. Building it
// explicitly, instead of reading ambient state, keeps the engine deterministic
// under an injected as-of date.
type ReportContext struct {
	// Rows is the daily metric series, already aggregated and deduplicated
	// by date. Order does not matter; rows outside every window are ignored.
	Rows []schema.MetricRow

	// AsOf anchors every lookback window and maturity check.
	AsOf time.Time

	// Targets are the monthly goals the summary is measured against.
	Targets schema.Targets
}

// byDay indexes rows by normalized calendar day.
func (c ReportContext) byDay() map[time.Time]schema.MetricRow {
	idx := make(map[time.Time]schema.MetricRow, len(c.Rows))
	for _, r := range c.Rows {
		idx[schema.Day(r.Date)] = r
	}
	return idx
}

// missingDay wraps ErrMissingDay with the offending date.
func missingDay(d time.Time) error {
	return fmt.Errorf("%w: %s", ErrMissingDay, d.Format("2006-01-02"))
}
