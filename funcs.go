package calc

import (
	"math"
	"strings"
)

// Func is a function of one real argument.
type Func func(float64) float64

// globalfuncs is the table of recognized functions. Names are matched in
// order as prefixes of the call text. Trigonometric functions use radians.
var globalfuncs = [...]struct {
	name string
	fn   Func
}{
	{"sin", math.Sin},
	{"cos", math.Cos},
	{"tan", math.Tan},
	{"asin", math.Asin},
	{"acos", math.Acos},
	{"atan", math.Atan},
	{"floor", math.Floor},
	{"ceil", math.Ceil},
}

// Funcs returns the names of the recognized functions.
func Funcs() []string {
	names := make([]string, len(globalfuncs))
	for i, f := range globalfuncs {
		names[i] = f.name
	}
	return names
}

// lookup finds the function whose name starts s. The match is a plain
// prefix match, so "sinh(x)" finds sin.
func lookup(s string) (string, Func) {
	for _, f := range globalfuncs {
		if strings.HasPrefix(s, f.name) {
			return f.name, f.fn
		}
	}
	return "", nil
}

// call evaluates the function call in text[start:end], whose name must begin
// at start. pos is the offset of the second letter of the function name as
// found by the scanner. The
// argument is everything between the open bracket following the name and
// the last character of the range.
func (e *evaluator) call(start, pos, end int) (float64, error) {
	name := pos - 1
	if name < start {
		// A sign in front of the call, as in -sin(1), moved pos to the
		// start of the range.
		return 0, &RangeError{Start: pos, End: end}
	}
	if name > start {
		// Something other than an operator precedes the name, as in 2sin(0).
		return 0, &FunctionError{Off: start, Text: string(e.text[start:end])}
	}
	s := string(e.text[name:end])
	id, fn := lookup(s)
	if fn == nil {
		return 0, &FunctionError{Off: pos, Text: s}
	}
	x, err := e.eval(name+len(id)+1, end-1)
	if err != nil {
		return 0, err
	}
	return fn(x), nil
}
