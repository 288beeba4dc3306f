package calc

import "strconv"

// Option is an option for evaluating an expression.
type Option interface {
	option()
}

type traceopt func(Step)

func (traceopt) option() {}

// Trace calls f for every range the evaluator reduces to a value. Calls
// happen in post-order: operands are reported before the operation that
// combines them, and the whole expression is reported last. Ranges that fail
// to evaluate are not reported.
func Trace(f func(Step)) Option {
	return traceopt(f)
}

// Step describes one reduction of a range of the input.
type Step struct {
	// Start and End delimit the range as offsets into the input.
	Start, End int
	// Pos is the position the scanner chose to split the range.
	Pos int
	// Kind is the kind of construct found at Pos.
	Kind Kind
	// Depth is the recursion depth, zero for the whole input.
	Depth int
	// Text is the input in the range.
	Text string
	// Value is the result of evaluating the range.
	Value float64
}

func (s Step) String() string {
	return strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + " " + s.Kind.String() + "@" + strconv.Itoa(s.Pos) + " " + s.Text + " = " + strconv.FormatFloat(s.Value, 'g', -1, 64)
}
