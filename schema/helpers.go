package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPercent renders a ratio as "14.70%" with the given precision, or
// "n/a" when the ratio is undetermined. Percentages are derived from the
// unrounded ratio.
func FormatPercent(r Ratio, precision int) string {
	if !r.Valid {
		return "n/a"
	}
	return FormatDecimalPercent(r.Value, precision)
}

// FormatDecimalPercent renders an exact decimal ratio as a percentage string.
func FormatDecimalPercent(v decimal.Decimal, precision int) string {
	f, _ := v.Mul(decimal.NewFromInt(100)).Float64()
	return fmt.Sprintf("%.*f%%", precision, f)
}

// FormatThousands renders an integer with thousands separators ("813,055").
func FormatThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

// FormatMoney rounds a decimal amount to two places and adds thousands
// separators to the integer part ("1,234.50").
func FormatMoney(v decimal.Decimal) string {
	r := v.Round(2)
	intPart := r.IntPart()
	frac := r.Sub(decimal.NewFromInt(intPart)).Abs()
	if frac.IsZero() {
		return FormatThousands(intPart)
	}
	fracStr := frac.StringFixed(2)
	return FormatThousands(intPart) + strings.TrimPrefix(fracStr, "0")
}

// DateLabel renders a day as "M-D" without zero padding, the label form used
// in the weekly table.
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d-%d", int(t.Month()), t.Day())
}

// CompletionOf classifies a completion ratio against its target.
func CompletionOf(r Ratio) CompletionLevel {
	if !r.Valid {
		return UnknownLevel
	}
	switch {
	case r.Value.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return MetLevel
	case r.Value.GreaterThanOrEqual(decimal.RequireFromString("0.8")):
		return NearLevel
	case r.Value.GreaterThanOrEqual(decimal.RequireFromString("0.5")):
		return BehindLevel
	default:
		return AtRiskLevel
	}
}
