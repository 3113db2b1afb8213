package schema

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "14.70%", FormatPercent(ValidRatio(decimal.RequireFromString("0.147")), 2))
	assert.Equal(t, "14.7%", FormatPercent(ValidRatio(decimal.RequireFromString("0.147")), 1))
	assert.Equal(t, "n/a", FormatPercent(Ratio{}, 2))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", FormatThousands(0))
	assert.Equal(t, "999", FormatThousands(999))
	assert.Equal(t, "1,000", FormatThousands(1000))
	assert.Equal(t, "813,055", FormatThousands(813055))
	assert.Equal(t, "1,234,567", FormatThousands(1234567))
	assert.Equal(t, "-72,137", FormatThousands(-72137))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "21,000", FormatMoney(decimal.NewFromInt(21000)))
	assert.Equal(t, "0.99", FormatMoney(decimal.RequireFromString("0.994")))
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "3-8", DateLabel(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12-31", DateLabel(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCompletionOf(t *testing.T) {
	assert.Equal(t, MetLevel, CompletionOf(ValidRatio(decimal.NewFromInt(1))))
	assert.Equal(t, MetLevel, CompletionOf(ValidRatio(decimal.RequireFromString("1.2"))))
	assert.Equal(t, NearLevel, CompletionOf(ValidRatio(decimal.RequireFromString("0.8"))))
	assert.Equal(t, BehindLevel, CompletionOf(ValidRatio(decimal.RequireFromString("0.5"))))
	assert.Equal(t, AtRiskLevel, CompletionOf(ValidRatio(decimal.RequireFromString("0.49"))))
	assert.Equal(t, UnknownLevel, CompletionOf(Ratio{}))
}

func TestRatioMulPropagatesInvalidity(t *testing.T) {
	valid := ValidRatio(decimal.RequireFromString("0.05"))
	c := Coefficient{Ratio: decimal.RequireFromString("1.4"), Valid: true}

	got := valid.Mul(c)
	assert.True(t, got.Valid)
	assert.True(t, got.Value.Equal(decimal.RequireFromString("0.07")))

	assert.False(t, (Ratio{}).Mul(c).Valid)
	assert.False(t, valid.Mul(Coefficient{}).Valid)
}

func TestDayNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d := Day(time.Date(2024, 3, 8, 23, 45, 1, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), d)
}
