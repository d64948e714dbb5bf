// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// RoundAmount rounds a currency amount to the nearest whole unit, half away
// from zero. Rounding is applied exactly once per derived figure, after all
// arithmetic.
func RoundAmount(val float64) int64 {
	return int64(math.Round(val))
}

// ClampNonNegative floors a derived amount at zero.
func ClampNonNegative(val int64) int64 {
	if val < 0 {
		return 0
	}
	return val
}
