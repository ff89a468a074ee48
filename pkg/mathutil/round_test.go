package mathutil

import (
	"math"
	"testing"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"Exactly half rounds up", 2.5, 3},
		{"Below half rounds down", 2.4, 2},
		{"Above half rounds up", 2.6, 3},
		{"Whole number unchanged", 2.0, 2},
		{"Zero", 0.0, 0},
		{"Half of odd integer", 25.0 / 2, 13},
		{"Small fraction", 0.49, 0},
		{"Large value", 1234.5, 1235},
		{"Just above whole number", 7.0000001, 7},
		{"Huge finite saturates", 5e299, math.MaxInt},
		{"Just past int range saturates", 1e19, math.MaxInt},
		{"Positive infinity saturates", math.Inf(1), math.MaxInt},
		{"Negative infinity saturates", math.Inf(-1), math.MinInt},
		{"NaN is zero", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundHalfUp(tt.input)
			if result != tt.expected {
				t.Errorf("RoundHalfUp(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      float64
		tolerance float64
		expected  bool
	}{
		{"Identical values", 5, 5, 0.1, true},
		{"Small difference", 5, 5.05, 0.1, true},
		{"Difference at tolerance is outside", 1, 2, 1, false},
		{"Large difference", 5, 6, 0.1, false},
		{"Order does not matter", 6, 5, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.a, tt.b, tt.tolerance); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestMin(t *testing.T) {
	if got := Min(3, 4); got != 3 {
		t.Errorf("Min(3, 4) = %v, expected 3", got)
	}
	if got := Min(4, 3); got != 3 {
		t.Errorf("Min(4, 3) = %v, expected 3", got)
	}
	if got := Min(-1, 0); got != -1 {
		t.Errorf("Min(-1, 0) = %v, expected -1", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(); got != 0 {
		t.Errorf("Average() = %v, expected 0", got)
	}
	if got := Average(40, 50, 60, 50); math.Abs(got-50) > 1e-12 {
		t.Errorf("Average(40, 50, 60, 50) = %v, expected 50", got)
	}
	if got := Average(1.5); got != 1.5 {
		t.Errorf("Average(1.5) = %v, expected 1.5", got)
	}
}
