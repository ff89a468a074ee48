// Package output provides utilities for formatting and displaying mat calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/mat-calc/internal/matcalc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Document is the serialized form of a calculation, shared by the JSON
// output and the HTTP API.
type Document struct {
	Margins         matcalc.MarginSet           `json:"margins"`
	Display         matcalc.IntegerMarginSet    `json:"display"`
	Frame           *matcalc.Rectangle          `json:"frame,omitempty"`
	Photo           *matcalc.Rectangle          `json:"photo,omitempty"`
	Style           string                      `json:"style,omitempty"`
	Recommendations []matcalc.RecommendationKey `json:"recommendations"`
	Error           matcalc.ErrorKind           `json:"error,omitempty"`
	Warnings        []string                    `json:"warnings,omitempty"`
}

// NewDocument builds the serialized form of result.
func NewDocument(result matcalc.Result, warnings []string) Document {
	recommendations := result.Recommendations
	if recommendations == nil {
		recommendations = []matcalc.RecommendationKey{}
	}
	return Document{
		Margins:         result.MarginSet,
		Display:         matcalc.FormatDimensions(result.MarginSet),
		Frame:           result.Frame,
		Photo:           result.Photo,
		Style:           result.Style,
		Recommendations: recommendations,
		Error:           result.Error,
		Warnings:        warnings,
	}
}

type side struct {
	name    string
	margin  float64
	display int
}

func sides(result matcalc.Result) []side {
	display := matcalc.FormatDimensions(result.MarginSet)
	return []side{
		{"top", result.Top, display.Top},
		{"right", result.Right, display.Right},
		{"bottom", result.Bottom, display.Bottom},
		{"left", result.Left, display.Left},
	}
}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result matcalc.Result) error {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().Bold(true)
	errorStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	p := message.NewPrinter(language.English)

	if result.Error != "" {
		_, err := fmt.Fprintln(w, errorStyle.Render("Error: "+string(result.Error)))
		return err
	}
	if result.IsEmpty() {
		_, err := fmt.Fprintln(w, "No result: frame and photo dimensions must all be positive")
		return err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("--- Mat dimensions (%s) ---", result.Style)))
	b.WriteString("\n")
	_, _ = p.Fprintf(&b, "Frame  | %.1f x %.1f mm\n", result.Frame.Width, result.Frame.Height)
	_, _ = p.Fprintf(&b, "Photo  | %.1f x %.1f mm\n", result.Photo.Width, result.Photo.Height)
	b.WriteString("\n")
	b.WriteString("Side   | Margin (mm) | Display\n")
	b.WriteString("____   | ___________ | _______\n")
	for _, s := range sides(result) {
		_, _ = p.Fprintf(&b, "%-6s | %11.2f | %d\n", s.name, s.margin, s.display)
	}
	if len(result.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range result.Recommendations {
			b.WriteString("  - " + string(rec) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CsvFormat writes the margins in comma-separated value format, followed by
// one row per recommendation.
func CsvFormat(w io.Writer, result matcalc.Result) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"side", "margin", "display"}}
	for _, s := range sides(result) {
		records = append(records, []string{s.name, fmt.Sprintf("%.2f", s.margin), fmt.Sprintf("%d", s.display)})
	}
	for _, rec := range result.Recommendations {
		records = append(records, []string{"recommendation", string(rec), ""})
	}
	if result.Error != "" {
		records = append(records, []string{"error", string(result.Error), ""})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// JSONFormat writes the result as an indented JSON document.
func JSONFormat(w io.Writer, result matcalc.Result, warnings []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(result, warnings)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
