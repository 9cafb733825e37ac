package shared

import "github.com/shopspring/decimal"

// All derived planner quantities are normalized through these helpers
// immediately after each arithmetic step, so repeated recomputation of the
// same plan is bit-identical. Rounding is half-up at the chosen decimal
// (decimal.Round is half-away-from-zero; planner quantities are never
// negative at the points where rounding is applied to magnitudes).

// Round rounds v half-up at the given number of decimal places.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// RoundAmount rounds a per-minute part amount (3 decimal places).
func RoundAmount(v float64) float64 {
	return Round(v, 3)
}

// RoundPower rounds a power figure used in round-trip derivations (1 decimal place).
func RoundPower(v float64) float64 {
	return Round(v, 1)
}

// RoundClock rounds an overclock percentage (4 decimal places).
func RoundClock(v float64) float64 {
	return Round(v, 4)
}
