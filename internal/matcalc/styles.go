package matcalc

import (
	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/mathutil"
)

// Margins distributes the available space (frame minus photo, per axis)
// according to style. Unknown styles use the proportional algorithm. No
// rounding is applied.
func Margins(style Style, availableWidth, availableHeight float64) MarginSet {
	switch style {
	case Proportional:
		return proportional(availableWidth, availableHeight)
	case Uniform:
		return uniform(availableWidth, availableHeight)
	case Talon:
		return talon(availableWidth, availableHeight)
	case Panoramic:
		return panoramic(availableWidth, availableHeight)
	case Portrait:
		return portrait(availableWidth, availableHeight)
	default:
		return proportional(availableWidth, availableHeight)
	}
}

// proportional uses the same margin on every side, bounded by the tighter
// axis. Space left over on the other axis is not redistributed.
func proportional(availableWidth, availableHeight float64) MarginSet {
	margin := mathutil.Min(availableWidth, availableHeight) / 2
	return MarginSet{Top: margin, Right: margin, Bottom: margin, Left: margin}
}

// uniform averages the horizontal and vertical half-spaces.
func uniform(availableWidth, availableHeight float64) MarginSet {
	horizontal := availableWidth / 2
	vertical := availableHeight / 2
	avg := (horizontal + vertical) / 2
	return MarginSet{Top: avg, Right: avg, Bottom: avg, Left: avg}
}

// talon gives the bottom a larger share of the vertical space.
func talon(availableWidth, availableHeight float64) MarginSet {
	horizontal := availableWidth / 2
	return MarginSet{
		Top:    availableHeight * constants.TalonTopRatio,
		Right:  horizontal,
		Bottom: availableHeight * constants.TalonBottomRatio,
		Left:   horizontal,
	}
}

// panoramic narrows the side margins.
func panoramic(availableWidth, availableHeight float64) MarginSet {
	horizontal := availableWidth * constants.NarrowRatio
	vertical := availableHeight / 2
	return MarginSet{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// portrait narrows the top and bottom margins.
func portrait(availableWidth, availableHeight float64) MarginSet {
	horizontal := availableWidth / 2
	vertical := availableHeight * constants.NarrowRatio
	return MarginSet{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}
