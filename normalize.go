package calc

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Compact prepares a line typed by a person for Eval. It folds full-width
// and other width variants to their canonical forms, so that "１＋２" becomes
// "1+2", and removes all whitespace.
func Compact(s string) string {
	s = width.Fold.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
