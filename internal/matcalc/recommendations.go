package matcalc

import (
	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Recommendations returns the advisory keys that apply to the margins, in a
// fixed order. The small and generous checks are mutually exclusive; the
// others are independent.
func Recommendations(m MarginSet, style Style) []RecommendationKey {
	recommendations := make([]RecommendationKey, 0, 4)

	avgMargin := mathutil.Average(m.Top, m.Right, m.Bottom, m.Left)
	if avgMargin < constants.SmallMarginThreshold {
		recommendations = append(recommendations, SmallMargins)
	} else if avgMargin > constants.GenerousMarginThreshold {
		recommendations = append(recommendations, GenerousMargins)
	}

	if style == Talon && m.Bottom > m.Top {
		recommendations = append(recommendations, TalonApplied)
	}

	if mathutil.WithinTolerance(m.Right, m.Left, constants.BalanceTolerance) &&
		mathutil.WithinTolerance(m.Top, m.Bottom, constants.BalanceTolerance) {
		recommendations = append(recommendations, BalancedMargins)
	}

	if floats.Min(m.Sides()) >= constants.OptimalMinimumMargin {
		recommendations = append(recommendations, OptimalDimensions)
	}

	return recommendations
}
