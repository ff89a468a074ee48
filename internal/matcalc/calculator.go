package matcalc

import (
	"github.com/iwvelando/mat-calc/pkg/dimension"
)

// Calculate parses the frame and photo dimensions and computes the mat
// margins for the given style. Unparseable dimensions count as 0. If any
// dimension is not positive the empty result is returned; if the photo does
// not fit strictly inside the frame the empty result carries PhotoTooLarge.
// Unknown styles behave like Proportional and are echoed unchanged.
func Calculate(frame, photo Input, style string) Result {
	return CalculateRect(
		Rectangle{Width: dimension.Parse(frame.Width), Height: dimension.Parse(frame.Height)},
		Rectangle{Width: dimension.Parse(photo.Width), Height: dimension.Parse(photo.Height)},
		style,
	)
}

// CalculateRect is Calculate for callers that already hold numeric
// dimensions.
func CalculateRect(frame, photo Rectangle, style string) Result {
	if frame.Width <= 0 || frame.Height <= 0 || photo.Width <= 0 || photo.Height <= 0 {
		return emptyResult()
	}

	if photo.Width >= frame.Width || photo.Height >= frame.Height {
		result := emptyResult()
		result.Error = PhotoTooLarge
		return result
	}

	availableWidth := frame.Width - photo.Width
	availableHeight := frame.Height - photo.Height

	margins := Margins(Style(style), availableWidth, availableHeight)

	return Result{
		MarginSet:       margins,
		Frame:           &Rectangle{Width: frame.Width, Height: frame.Height},
		Photo:           &Rectangle{Width: photo.Width, Height: photo.Height},
		Style:           style,
		Recommendations: Recommendations(margins, Style(style)),
	}
}

func emptyResult() Result {
	return Result{}
}
