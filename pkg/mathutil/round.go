// Package mathutil provides common mathematical utility functions.
package mathutil

import "math"

// RoundHalfUp rounds a value to the nearest integer. A fractional part of
// exactly 0.5 rounds up, which for positive values matches "round half away
// from zero". NaN yields 0 and values outside the int range saturate at
// math.MaxInt or math.MinInt.
func RoundHalfUp(val float64) int {
	switch {
	case math.IsNaN(val):
		return 0
	case val >= math.MaxInt:
		return math.MaxInt
	case val <= math.MinInt:
		return math.MinInt
	}

	floor := math.Floor(val)
	frac := val - floor

	if frac > 0.5 {
		return int(math.Ceil(val))
	} else if frac < 0.5 {
		return int(floor)
	}
	// Exactly one half.
	return int(math.Ceil(val))
}

// WithinTolerance checks if two values differ by strictly less than tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) < tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Average returns the arithmetic mean of the values, summed left to right.
func Average(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
