package matcalc

import "testing"

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name     string
		input    MarginSet
		expected IntegerMarginSet
	}{
		{
			name:     "Each rounding branch",
			input:    MarginSet{Top: 2.5, Right: 2.4, Bottom: 2.6, Left: 2.0},
			expected: IntegerMarginSet{Top: 3, Right: 2, Bottom: 3, Left: 2},
		},
		{
			name:     "Zero margins",
			input:    MarginSet{},
			expected: IntegerMarginSet{},
		},
		{
			name:     "Exact halves from odd spans",
			input:    MarginSet{Top: 101.0 / 2, Right: 7.0 / 2, Bottom: 1.0 / 2, Left: 99.0 / 2},
			expected: IntegerMarginSet{Top: 51, Right: 4, Bottom: 1, Left: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDimensions(tt.input)
			if got != tt.expected {
				t.Errorf("FormatDimensions(%+v) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatDimensionsLeavesSourceUntouched(t *testing.T) {
	margins := MarginSet{Top: 12.5, Right: 30.2, Bottom: 12.5, Left: 30.2}
	_ = FormatDimensions(margins)
	if margins.Top != 12.5 || margins.Right != 30.2 {
		t.Errorf("expected source margins unchanged, got %+v", margins)
	}
}
