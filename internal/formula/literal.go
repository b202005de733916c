package formula

import (
	"math"
	"strconv"
	"strings"
)

// Marker is the first character of every formula.
const Marker = '='

// IsFormula reports whether source is a formula.
func IsFormula(source string) bool {
	return len(source) > 0 && source[0] == Marker
}

// ParseLiteral returns the numeric value of non-formula text. Blank and
// non-numeric text is worth 0; literals never fail.
func ParseLiteral(source string) float64 {
	n, ok := literalNumber(source)
	if !ok {
		return 0
	}
	return n
}

// literalNumber parses trimmed text as a finite decimal number.
func literalNumber(source string) (float64, bool) {
	text := strings.TrimSpace(source)
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
