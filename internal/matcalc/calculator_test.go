package matcalc

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

var (
	standardFrame = Input{Width: 300, Height: 400}
	standardPhoto = Input{Width: 200, Height: 300}
)

func TestCalculateDegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		frame Input
		photo Input
	}{
		{"All empty strings", Input{Width: "", Height: ""}, Input{Width: "", Height: ""}},
		{"Nil values", Input{}, Input{}},
		{"Zero frame width", Input{Width: 0, Height: 400}, standardPhoto},
		{"Zero photo height", standardFrame, Input{Width: 200, Height: 0}},
		{"Negative frame height", Input{Width: 300, Height: -400}, standardPhoto},
		{"Non-numeric frame width", Input{Width: "wide", Height: 400}, standardPhoto},
		{"Non-numeric photo", standardFrame, Input{Width: "abc", Height: "def"}},
		{"Zero photo larger than frame", Input{Width: 100, Height: 100}, Input{Width: 200, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.frame, tt.photo, "proportional")
			if result.MarginSet != (MarginSet{}) {
				t.Errorf("expected zero margins, got %+v", result.MarginSet)
			}
			if result.Error != "" {
				t.Errorf("expected no error, got %q", result.Error)
			}
			if result.Err() != nil {
				t.Errorf("expected nil Err(), got %v", result.Err())
			}
			if !result.IsEmpty() {
				t.Error("expected empty result")
			}
			if result.Style != "" || result.Recommendations != nil {
				t.Errorf("expected no style or recommendations, got %q %v", result.Style, result.Recommendations)
			}
		})
	}
}

func TestCalculatePhotoTooLarge(t *testing.T) {
	tests := []struct {
		name  string
		frame Input
		photo Input
	}{
		{"Equal width", Input{Width: 300, Height: 400}, Input{Width: 300, Height: 200}},
		{"Equal height", Input{Width: 300, Height: 400}, Input{Width: 100, Height: 400}},
		{"Wider photo", Input{Width: 300, Height: 400}, Input{Width: 350, Height: 200}},
		{"Taller photo", Input{Width: 300, Height: 400}, Input{Width: 100, Height: 500}},
		{"Same size", Input{Width: "300", Height: "400"}, Input{Width: "300", Height: "400"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.frame, tt.photo, "talon")
			if result.Error != PhotoTooLarge {
				t.Fatalf("expected %q, got %q", PhotoTooLarge, result.Error)
			}
			if !errors.Is(result.Err(), ErrPhotoTooLarge) {
				t.Errorf("expected ErrPhotoTooLarge, got %v", result.Err())
			}
			if result.MarginSet != (MarginSet{}) {
				t.Errorf("expected zero margins, got %+v", result.MarginSet)
			}
			if !result.IsEmpty() {
				t.Error("expected empty result")
			}
		})
	}
}

func TestCalculateStyles(t *testing.T) {
	tests := []struct {
		style           string
		expected        MarginSet
		recommendations []RecommendationKey
	}{
		{
			style:           "proportional",
			expected:        MarginSet{Top: 50, Right: 50, Bottom: 50, Left: 50},
			recommendations: []RecommendationKey{GenerousMargins, BalancedMargins, OptimalDimensions},
		},
		{
			style:           "uniform",
			expected:        MarginSet{Top: 50, Right: 50, Bottom: 50, Left: 50},
			recommendations: []RecommendationKey{GenerousMargins, BalancedMargins, OptimalDimensions},
		},
		{
			style:           "talon",
			expected:        MarginSet{Top: 40, Right: 50, Bottom: 60, Left: 50},
			recommendations: []RecommendationKey{GenerousMargins, TalonApplied, OptimalDimensions},
		},
		{
			style:           "panoramic",
			expected:        MarginSet{Top: 50, Right: 30, Bottom: 50, Left: 30},
			recommendations: []RecommendationKey{GenerousMargins, BalancedMargins, OptimalDimensions},
		},
		{
			style:           "portrait",
			expected:        MarginSet{Top: 30, Right: 50, Bottom: 30, Left: 50},
			recommendations: []RecommendationKey{GenerousMargins, BalancedMargins, OptimalDimensions},
		},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			result := Calculate(standardFrame, standardPhoto, tt.style)
			if result.Error != "" {
				t.Fatalf("unexpected error %q", result.Error)
			}
			if result.MarginSet != tt.expected {
				t.Errorf("margins = %+v, expected %+v", result.MarginSet, tt.expected)
			}
			if !reflect.DeepEqual(result.Recommendations, tt.recommendations) {
				t.Errorf("recommendations = %v, expected %v", result.Recommendations, tt.recommendations)
			}
			if result.Style != tt.style {
				t.Errorf("style = %q, expected %q", result.Style, tt.style)
			}
			if *result.Frame != (Rectangle{Width: 300, Height: 400}) {
				t.Errorf("frame = %+v", *result.Frame)
			}
			if *result.Photo != (Rectangle{Width: 200, Height: 300}) {
				t.Errorf("photo = %+v", *result.Photo)
			}
		})
	}
}

func TestCalculateStringInput(t *testing.T) {
	result := Calculate(
		Input{Width: "300", Height: " 400mm"},
		Input{Width: "200.0", Height: "3e2"},
		"proportional",
	)
	if result.MarginSet != (MarginSet{Top: 50, Right: 50, Bottom: 50, Left: 50}) {
		t.Errorf("margins = %+v, expected all 50", result.MarginSet)
	}
}

func TestCalculateUnknownStyleFallsBack(t *testing.T) {
	for _, style := range []string{"bogus", "", "Talon", "PROPORTIONAL"} {
		t.Run(style, func(t *testing.T) {
			frame := Input{Width: 250, Height: 310}
			photo := Input{Width: 150, Height: 260}

			got := Calculate(frame, photo, style)
			want := Calculate(frame, photo, "proportional")

			if got.MarginSet != want.MarginSet {
				t.Errorf("margins = %+v, expected %+v", got.MarginSet, want.MarginSet)
			}
			if !reflect.DeepEqual(got.Recommendations, want.Recommendations) {
				t.Errorf("recommendations = %v, expected %v", got.Recommendations, want.Recommendations)
			}
			if got.Style != style {
				t.Errorf("style = %q, expected it echoed as %q", got.Style, style)
			}
		})
	}
}

func TestCalculateProportionalUsesTighterAxis(t *testing.T) {
	result := CalculateRect(Rectangle{Width: 300, Height: 350}, Rectangle{Width: 200, Height: 300}, "proportional")
	if result.MarginSet != (MarginSet{Top: 25, Right: 25, Bottom: 25, Left: 25}) {
		t.Errorf("margins = %+v, expected all 25", result.MarginSet)
	}
}

func TestCalculateUniformAveragesAxes(t *testing.T) {
	result := CalculateRect(Rectangle{Width: 300, Height: 350}, Rectangle{Width: 200, Height: 300}, "uniform")
	if result.MarginSet != (MarginSet{Top: 37.5, Right: 37.5, Bottom: 37.5, Left: 37.5}) {
		t.Errorf("margins = %+v, expected all 37.5", result.MarginSet)
	}
	if got := FormatDimensions(result.MarginSet); got != (IntegerMarginSet{Top: 38, Right: 38, Bottom: 38, Left: 38}) {
		t.Errorf("formatted = %+v, expected all 38", got)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	for _, style := range StyleNames() {
		first := Calculate(Input{Width: 213.7, Height: 297.3}, Input{Width: 151.1, Height: 199.9}, style)
		for i := 0; i < 10; i++ {
			again := Calculate(Input{Width: 213.7, Height: 297.3}, Input{Width: 151.1, Height: 199.9}, style)
			if again.MarginSet != first.MarginSet {
				t.Fatalf("style %s: run %d margins %+v differ from %+v", style, i, again.MarginSet, first.MarginSet)
			}
		}
	}
}

func TestCalculateConcurrentUse(t *testing.T) {
	want := Calculate(standardFrame, standardPhoto, "talon")

	var wg sync.WaitGroup
	errs := make(chan MarginSet, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Calculate(standardFrame, standardPhoto, "talon")
			if got.MarginSet != want.MarginSet {
				errs <- got.MarginSet
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent margins %+v differ from %+v", got, want.MarginSet)
	}
}

func TestCalculateResultIsFresh(t *testing.T) {
	first := Calculate(standardFrame, standardPhoto, "talon")
	first.Recommendations[0] = "mutated"
	first.Frame.Width = 1

	second := Calculate(standardFrame, standardPhoto, "talon")
	if second.Recommendations[0] != GenerousMargins {
		t.Errorf("expected fresh recommendations, got %v", second.Recommendations)
	}
	if second.Frame.Width != 300 {
		t.Errorf("expected fresh frame, got %+v", *second.Frame)
	}
}

func TestStyles(t *testing.T) {
	expected := []string{"proportional", "uniform", "talon", "panoramic", "portrait"}
	if got := StyleNames(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("StyleNames() = %v, expected %v", got, expected)
	}

	styles := Styles()
	styles[0] = "changed"
	if Styles()[0] != Proportional {
		t.Error("Styles() must return a copy")
	}

	for _, name := range expected {
		if !Style(name).Known() {
			t.Errorf("expected %s to be known", name)
		}
	}
	if Style("bogus").Known() {
		t.Error("expected bogus to be unknown")
	}
}
