package grading

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// normalizeText trims surrounding whitespace and, unless caseSensitive,
// lower-cases s.
func normalizeText(s string, caseSensitive bool) string {
	s = strings.TrimFunc(s, isTrimmable)
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// formatNumber renders n the way a JSON client would print it: shortest
// round-trip digits, exponent form only for very large or very small
// magnitudes (1e+21, 1.5e-7).
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	abs := math.Abs(n)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(n, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + exp[:1] + digits
}
