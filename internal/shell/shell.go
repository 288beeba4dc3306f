// Package shell implements a line-oriented interactive loop with history and
// meta-commands.
package shell

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/peterh/liner"
)

// LineReader reads lines from a person. *liner.State implements LineReader.
type LineReader interface {
	// Prompt shows the prompt and returns the line read without its
	// terminating newline.
	Prompt(prompt string) (string, error)
	// AppendHistory adds an entry to the history list.
	AppendHistory(item string)
}

var _ LineReader = (*liner.State)(nil)

// Shell is an interactive loop. It is not safe to use a Shell concurrently.
type Shell struct {
	prompt    string
	in        LineReader
	out       io.Writer
	frontload string
	commands  map[string]func(arg string) bool
}

// New creates a shell that reads lines from in and writes echoes and notices
// to out.
func New(prompt string, in LineReader, out io.Writer) *Shell {
	return &Shell{
		prompt:   prompt,
		in:       in,
		out:      out,
		commands: make(map[string]func(string) bool),
	}
}

// Frontload sets a line to evaluate before reading any input. Returns sh for
// chaining.
func (sh *Shell) Frontload(line string) *Shell {
	sh.frontload = line
	return sh
}

// Command registers a meta-command. name includes the leading dot, e.g.
// ".quit". fn receives the text after the first space, if any. If fn
// returns true, the loop ends. Returns sh for chaining.
func (sh *Shell) Command(name string, fn func(arg string) bool) *Shell {
	sh.commands[name] = fn
	return sh
}

// Commands returns the names of the registered meta-commands in sorted order.
func (sh *Shell) Commands() []string {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run reads lines until the input ends, the prompt is aborted, a
// meta-command asks to stop, or eval returns true. eval receives every line
// that is not empty and not a meta-command. Meta-commands may be indented.
// Lines passed to eval are added to the history. The end of input and an
// aborted prompt are not errors.
func (sh *Shell) Run(eval func(line string) bool) error {
	if sh.frontload != "" {
		fmt.Fprintf(sh.out, "%s%s\n", sh.prompt, sh.frontload)
		sh.in.AppendHistory(sh.frontload)
		if eval(sh.frontload) {
			return nil
		}
	}
	for {
		line, err := sh.in.Prompt(sh.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}
		if m := strings.TrimLeftFunc(line, unicode.IsSpace); IsMeta(m) {
			if sh.meta(m) {
				return nil
			}
			continue
		}
		sh.in.AppendHistory(line)
		if eval(line) {
			return nil
		}
	}
}

// meta runs a meta-command line and reports whether the loop should end.
func (sh *Shell) meta(line string) bool {
	name, arg := line, ""
	if k := strings.IndexByte(line, ' '); k >= 0 {
		name, arg = line[:k], line[k+1:]
	}
	fn := sh.commands[name]
	if fn == nil {
		fmt.Fprintf(sh.out, "unknown command %s\n", name)
		return false
	}
	return fn(arg)
}

// IsMeta reports whether line is a meta-command: at least two characters,
// starting with a dot that is not the start of a number like ".5".
func IsMeta(line string) bool {
	if len(line) < 2 || line[0] != '.' {
		return false
	}
	return line[1] < '0' || line[1] > '9'
}
