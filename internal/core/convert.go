package core

// convert.go coerces loosely typed submission values into the scalar types
// the field specs expect.
//
// Form posts arrive as strings, spreadsheet imports as whatever the upstream
// JSON decoder produced (float64 for every number, strings for everything
// else). Amount-like fields tolerate the usual human formats: currency
// symbols, thousands separators, accounting-style parentheses for negatives.

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates a numeric string after cleanup. Matches integers,
// decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber extracts a float64 from a submitted value. Numeric JSON values
// pass through; strings get the tolerant parse. Anything else is rejected.
func ParseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		return parseNumericString(n)
	}
	return 0, false
}

// ParseInt extracts an integer from a submitted value. Floats are accepted
// only when they carry no fractional part, which is how spreadsheet decoders
// deliver whole numbers.
func ParseInt(v any) (int, bool) {
	f, ok := ParseNumber(v)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// CoerceString renders an identifier-like value as a string regardless of the
// source type. Whole floats drop their fractional zero so a ZIP decoded as
// 30301.0 becomes "30301".
func CoerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	}
	return ""
}

// parseNumericString applies the tolerant amount parse: currency symbols and
// thousands separators are stripped, accounting parentheses negate.
func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToCents converts a dollar amount to the integer cents invoices store.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
