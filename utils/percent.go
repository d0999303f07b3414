package utils

import "github.com/shopspring/decimal"

// Percent computes part/total as a percentage rounded to 2 decimal places.
// Rounding happens here, at the presentation boundary, never inside the sums
// the figure is derived from.
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	pct := decimal.NewFromInt(part * 100).DivRound(decimal.NewFromInt(total), 2)
	f, _ := pct.Float64()
	return f
}

// DecimalPercent is Percent for exact decimal quantities, used for money
// figures such as collection rates.
func DecimalPercent(part, total decimal.Decimal) float64 {
	if total.Sign() == 0 {
		return 0
	}
	pct := part.Mul(decimal.NewFromInt(100)).DivRound(total, 2)
	f, _ := pct.Float64()
	return f
}
