package calc

import "strconv"

// BracketError is an error indicating parentheses that do not balance within
// a range of the input. It implements InputError.
type BracketError struct {
	// Off is the offset of the character where the scan gave up.
	Off int
	// Depth is the nesting count left over at the end of the scan. It is
	// positive for unmatched close brackets and negative for unmatched open
	// brackets.
	Depth int
}

func (err *BracketError) Error() string {
	if err.Depth < 0 {
		return errpos(err.Off, "open bracket with no close bracket")
	}
	return errpos(err.Off, "close bracket with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Off
}

// FunctionError is an error indicating a function name that is not in the
// function table. It implements InputError.
type FunctionError struct {
	// Off is the position of the call, or of the start of the range when
	// something precedes the name.
	Off int
	// Text is the input from the start of the name, or of the range, to the
	// end of the call.
	Text string
}

func (err *FunctionError) Error() string {
	return errpos(err.Off, "unknown function in "+strconv.Quote(err.Text))
}

func (err *FunctionError) Pos() int {
	return err.Off
}

// NumberError is an error indicating a literal that is not a decimal number.
// It implements InputError.
type NumberError struct {
	// Off is the offset of the start of the literal.
	Off int
	// Text is the literal.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return errpos(err.Off, "missing number")
	}
	return errpos(err.Off, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Off
}

// RangeError is an error indicating that an operand would span an invalid
// range of the input, e.g. a function name with nothing after it or a sign
// in front of a call. It implements InputError.
type RangeError struct {
	// Start and End delimit the offending range.
	Start, End int
}

func (err *RangeError) Error() string {
	return errpos(err.Start, "no operand between "+strconv.Itoa(err.Start)+" and "+strconv.Itoa(err.End))
}

func (err *RangeError) Pos() int {
	return err.Start
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error returned by
// Eval implements InputError.
type InputError interface {
	error
	// Pos returns the offset in characters from the start of the input to
	// the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*FunctionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*RangeError)(nil)
)
