package engine

import "math"

// SafeNumber returns x if it is finite, otherwise fallback. Every arithmetic
// entry point in this package routes raw inputs through here so that a
// half-edited form field degrades to 0 instead of propagating NaN.
func SafeNumber(x, fallback float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback
	}
	return x
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(SafeNumber(x, 0)*100) / 100
}

// Ceil2 rounds up to 2 decimal places.
func Ceil2(x float64) float64 {
	return math.Ceil(SafeNumber(x, 0)*100) / 100
}

// Clamp limits x to [min, max].
func Clamp(x, min, max float64) float64 {
	x = SafeNumber(x, min)
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// nonNegative floors a raw input at zero after sanitizing it.
func nonNegative(x float64) float64 {
	x = SafeNumber(x, 0)
	if x < 0 {
		return 0
	}
	return x
}
