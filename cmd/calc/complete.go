package main

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

// complete is the shell's tab completion. It completes the function name at
// the end of the line, adding the open bracket.
func complete(line string) []string {
	head, word := "", line
	if k := strings.LastIndexFunc(line, func(r rune) bool { return !unicode.IsLetter(r) }); k >= 0 {
		_, sz := utf8.DecodeRuneInString(line[k:])
		head, word = line[:k+sz], line[k+sz:]
	}
	if word == "" {
		return nil
	}
	var r []string
	for _, name := range calc.Funcs() {
		if strings.HasPrefix(name, word) {
			r = append(r, head+name+"(")
		}
	}
	return r
}
