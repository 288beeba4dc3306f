package calc

import (
	"math"
)

// evaluator holds the state of one call to Eval. It is not safe to use an
// evaluator concurrently, but every Eval call creates its own.
type evaluator struct {
	text  []rune
	trace func(Step)
	depth int
}

// Eval evaluates an expression and returns its value. src must not contain
// whitespace; see Compact. If the expression is invalid, the error
// implements InputError and is one of *BracketError, *FunctionError,
// *NumberError, or *RangeError.
//
// Division by zero, powers like 0^0, and arguments outside a function's
// domain are not errors. They produce infinities or NaN as usual for
// floating-point arithmetic.
func Eval(src string, opts ...Option) (float64, error) {
	e := evaluator{text: []rune(src)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case traceopt:
			e.trace = opt
		default:
			panic("calc: unknown option type")
		}
	}
	return e.eval(0, len(e.text))
}

// eval evaluates the range text[start:end].
func (e *evaluator) eval(start, end int) (float64, error) {
	if start < 0 || start > end || end > len(e.text) {
		return 0, &RangeError{Start: start, End: end}
	}
	pos, kind, err := split(e.text, start, end)
	if err != nil {
		return 0, err
	}
	d := e.depth
	e.depth++
	r, err := e.reduce(start, end, pos, kind)
	e.depth = d
	if err != nil {
		return 0, err
	}
	if e.trace != nil {
		e.trace(Step{
			Start: start,
			End:   end,
			Pos:   pos,
			Kind:  kind,
			Depth: d,
			Text:  string(e.text[start:end]),
			Value: r,
		})
	}
	return r, nil
}

// reduce evaluates text[start:end] given the split found by the scanner.
func (e *evaluator) reduce(start, end, pos int, kind Kind) (float64, error) {
	switch kind {
	case Addition, Subtraction, Multiplication, Division, Exponent:
		l, err := e.eval(start, pos)
		if err != nil {
			return 0, err
		}
		r, err := e.eval(pos+1, end)
		if err != nil {
			return 0, err
		}
		return combine(kind, l, r), nil
	case Paren:
		return e.eval(start+1, end-1)
	case Literal:
		return parseNumber(e.text, start, end)
	case Function:
		return e.call(start, pos, end)
	default:
		panic("calc: invalid kind " + kind.String())
	}
}

// combine applies a binary operator.
func combine(kind Kind, l, r float64) float64 {
	switch kind {
	case Addition:
		return l + r
	case Subtraction:
		return l - r
	case Multiplication:
		return l * r
	case Division:
		return l / r
	case Exponent:
		return math.Pow(l, r)
	default:
		panic("calc: combine with non-binary kind " + kind.String())
	}
}
