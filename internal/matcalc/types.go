// Package matcalc computes photo-mat border widths from a frame opening, a
// photo size and a cutting style. All functions are pure and safe for
// concurrent use.
package matcalc

import (
	"errors"

	"github.com/iwvelando/mat-calc/pkg/constants"
)

// Style selects the algorithm used to distribute the available mat space.
type Style string

// Recognized styles.
const (
	Proportional Style = constants.StyleProportional
	Uniform      Style = constants.StyleUniform
	Talon        Style = constants.StyleTalon
	Panoramic    Style = constants.StylePanoramic
	Portrait     Style = constants.StylePortrait
)

var styleKeys = []Style{Proportional, Uniform, Talon, Panoramic, Portrait}

// Styles returns the recognized styles in display order.
func Styles() []Style {
	return append([]Style(nil), styleKeys...)
}

// StyleNames returns the recognized style names in display order.
func StyleNames() []string {
	names := make([]string, len(styleKeys))
	for i, s := range styleKeys {
		names[i] = string(s)
	}
	return names
}

// Known reports whether s is one of the recognized styles.
func (s Style) Known() bool {
	for _, k := range styleKeys {
		if s == k {
			return true
		}
	}
	return false
}

// RecommendationKey identifies an advisory message. The values are
// translation keys; turning them into text is up to the caller.
type RecommendationKey string

// Recommendation keys, in the order they are evaluated.
const (
	SmallMargins      RecommendationKey = "recSmallMargins"
	GenerousMargins   RecommendationKey = "recGenerousMargins"
	TalonApplied      RecommendationKey = "recTalonApplied"
	BalancedMargins   RecommendationKey = "recBalancedMargins"
	OptimalDimensions RecommendationKey = "recOptimalDimensions"
)

// ErrorKind identifies why a calculation could not produce margins. The zero
// value means no error.
type ErrorKind string

// PhotoTooLarge is set when the photo does not fit strictly inside the frame
// opening on both axes.
const PhotoTooLarge ErrorKind = "errorPhotoTooLarge"

// ErrPhotoTooLarge is the error form of PhotoTooLarge.
var ErrPhotoTooLarge = errors.New("photo must be smaller than the frame opening on both axes")

// Rectangle is a width and height in millimeters.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width" mapstructure:"width"`
	Height float64 `json:"height" yaml:"height" mapstructure:"height"`
}

// Input is a rectangle whose sides may be numbers or numeric strings, as
// typed into a form.
type Input struct {
	Width  interface{}
	Height interface{}
}

// MarginSet holds the mat border width on each side of the photo, in
// millimeters.
type MarginSet struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Sides returns the margins in top, right, bottom, left order.
func (m MarginSet) Sides() []float64 {
	return []float64{m.Top, m.Right, m.Bottom, m.Left}
}

// IntegerMarginSet holds display-rounded margins.
type IntegerMarginSet struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Result is the outcome of a calculation. An empty result (not enough input
// yet, or an error) has zero margins and no Frame, Photo, Style or
// Recommendations.
type Result struct {
	MarginSet
	Frame           *Rectangle          `json:"frame,omitempty"`
	Photo           *Rectangle          `json:"photo,omitempty"`
	Style           string              `json:"style,omitempty"`
	Recommendations []RecommendationKey `json:"recommendations,omitempty"`
	Error           ErrorKind           `json:"error,omitempty"`
}

// IsEmpty reports whether the result carries no computed margins.
func (r Result) IsEmpty() bool {
	return r.Frame == nil || r.Photo == nil
}

// Err returns ErrPhotoTooLarge when the result carries that error kind and
// nil otherwise.
func (r Result) Err() error {
	if r.Error == PhotoTooLarge {
		return ErrPhotoTooLarge
	}
	return nil
}
