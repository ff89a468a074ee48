// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/dimension"
	"github.com/sahilm/fuzzy"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// Suggest returns the closest fuzzy match for input among candidates, or ""
// when nothing matches.
func Suggest(input string, candidates []string) string {
	input = strings.TrimSpace(input)
	if input == "" || len(candidates) == 0 {
		return ""
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// StyleWarning returns "" when style is one of known. Otherwise it returns a
// warning saying the default style will be used, with a suggestion when one
// of the known styles is a close match.
func StyleWarning(style string, known []string) string {
	for _, k := range known {
		if style == k {
			return ""
		}
	}

	warning := fmt.Sprintf("unknown style %q, falling back to %s", style, constants.DefaultStyle)
	if suggestion := Suggest(style, known); suggestion != "" {
		warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return warning
}

// ValidateDimensionText reports whether text is acceptable as a dimension
// field while it is being typed: either empty or starting with a
// non-negative number. Trailing text is allowed, so "12.5mm" is accepted.
func ValidateDimensionText(text string) bool {
	if text == "" {
		return true
	}
	value, ok := dimension.ParsePrefix(text)
	return ok && value >= 0
}
