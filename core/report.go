package core

import (
	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

// BuildReport runs the full projection over one context: month-to-date
// summary plus the seven-day table. The computation is single-pass and
// derives everything fresh; nothing persists between calls.
func BuildReport(ctx ReportContext) (schema.ReportSummary, []schema.WeekRow, error) {
	weeks, err := buildWeekly(ctx)
	if err != nil {
		return schema.ReportSummary{}, nil, err
	}
	return buildSummary(ctx), weeks, nil
}
