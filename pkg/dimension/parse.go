// Package dimension provides lenient parsing of user-entered millimeter values.
package dimension

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Value is a dimension in millimeters that decodes from either a JSON number
// or a numeric string. Anything that does not parse decodes to 0.
type Value float64

// Float64 returns the value as a float64.
func (v Value) Float64() float64 {
	return float64(v)
}

// UnmarshalJSON accepts numbers, numeric strings and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
			return err
		}
		*v = Value(ParseString(s))
		return nil
	}
	// Numbers go through the same prefix rules; true, false, null and
	// composite values all fall out as 0.
	*v = Value(ParseString(trimmed))
	return nil
}

// Parse converts a number or numeric string into a float64. Unsupported
// types, unparseable strings and NaN all yield 0.
func Parse(value interface{}) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case Value:
		f = float64(v)
	case json.Number:
		f = ParseString(v.String())
	case string:
		f = ParseString(v)
	default:
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// ParseString parses the longest leading decimal number in s, ignoring
// leading whitespace and any trailing text (so "120mm" is 120). A leading
// "Infinity" with optional sign parses as an infinity. If no number is
// found the result is 0.
func ParseString(s string) float64 {
	f, _ := ParsePrefix(s)
	return f
}

// ParsePrefix is ParseString that also reports whether s starts with a
// number at all. Text without a numeric prefix, such as "abc" or "Inf",
// returns 0 and false.
func ParsePrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	prefix := numericPrefix(s)
	if prefix == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseFloat returns the correctly signed infinity or zero.
			return f, true
		}
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// numericPrefix returns the longest prefix of s that forms a decimal float
// literal, or "" when there is none.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i] + "Inf"
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	end := i

	// An exponent only counts when it has at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			end = j
		}
	}

	return s[:end]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
