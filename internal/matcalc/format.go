package matcalc

import "github.com/iwvelando/mat-calc/pkg/mathutil"

// FormatDimensions rounds each margin for display, with halves rounding up.
// The unrounded MarginSet stays the source of truth for further arithmetic.
func FormatDimensions(m MarginSet) IntegerMarginSet {
	return IntegerMarginSet{
		Top:    mathutil.RoundHalfUp(m.Top),
		Right:  mathutil.RoundHalfUp(m.Right),
		Bottom: mathutil.RoundHalfUp(m.Bottom),
		Left:   mathutil.RoundHalfUp(m.Left),
	}
}
