package calc

import (
	"errors"
	"strconv"
)

// parseNumber converts the literal in text[start:end].
func parseNumber(text []rune, start, end int) (float64, error) {
	s := string(text[start:end])
	if !decimal(s) {
		return 0, &NumberError{Off: start, Text: s}
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, strconv.ErrRange):
		// Too many digits. ParseFloat already gives ±Inf.
	default:
		return 0, &NumberError{Off: start, Text: s}
	}
	return f, nil
}

// decimal reports whether s is an optional minus sign followed by digits
// with at most one decimal point and at least one digit. ParseFloat accepts
// much more than that, e.g. exponents, hex, and "inf".
func decimal(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	var dig, dot bool
	for _, c := range s {
		switch {
		case isDigit(c):
			dig = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dig
}
