package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/calc"
)

// printer evaluates lines and writes their results.
type printer struct {
	out  io.Writer
	cfg  config
	dump bool
	// failed is set once any evaluation fails.
	failed bool
}

// eval evaluates one line of input and prints the result or the error. It
// never stops the caller's loop.
func (p *printer) eval(line string) bool {
	src := calc.Compact(line)
	if src == "" {
		return false
	}
	var steps []calc.Step
	var opts []calc.Option
	if p.cfg.Echo || p.dump {
		opts = append(opts, calc.Trace(func(s calc.Step) { steps = append(steps, s) }))
	}
	r, err := calc.Eval(src, opts...)
	if p.dump {
		spew.Fdump(p.out, steps)
	}
	if p.cfg.Echo {
		writeSteps(p.out, steps)
	}
	if err != nil {
		p.failed = true
		writeError(p.out, src, err)
		return false
	}
	fmt.Fprintln(p.out, format(r, p.cfg.Format, p.cfg.Round))
	return false
}

// format formats a result. If round is non-negative and r is finite, the
// result is rounded half away from zero to that many decimal places.
// Otherwise verb formats it.
func format(r float64, verb string, round int) string {
	if round >= 0 && !math.IsInf(r, 0) && !math.IsNaN(r) {
		return decimal.NewFromFloat(r).StringFixed(int32(round))
	}
	return fmt.Sprintf(verb, r)
}

// writeSteps prints evaluation steps as an indented tree, outer ranges
// before the ranges inside them.
func writeSteps(w io.Writer, steps []calc.Step) {
	s := append([]calc.Step(nil), steps...)
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Start != s[j].Start {
			return s[i].Start < s[j].Start
		}
		return s[i].Depth < s[j].Depth
	})
	for _, v := range s {
		fmt.Fprintf(w, "%s%s : %v@%d = %g\n", strings.Repeat("  ", v.Depth), v.Text, v.Kind, v.Pos, v.Value)
	}
}

// writeError prints an evaluation error with a marker under the character
// that caused it.
func writeError(w io.Writer, src string, err error) {
	var ie calc.InputError
	if errors.As(err, &ie) {
		if k := ie.Pos(); k >= 0 && k <= len([]rune(src)) {
			fmt.Fprintf(w, "%s\n%s^\n", src, strings.Repeat(" ", k))
		}
	}
	fmt.Fprintln(w, err)
}
