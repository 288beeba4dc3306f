package calc

// Kind identifies the construct the scanner chose to evaluate last in a
// range. Kinds are ordered from loosest binding to tightest; the scanner only
// ever replaces its current choice with a looser one.
type Kind int8

const (
	Addition Kind = iota // evaluate left, add right
	Subtraction          // evaluate left, sub right
	Multiplication       // evaluate left, mul right
	Division             // evaluate left, div by right
	Exponent             // evaluate left, exp by right
	Function             // function name starting before pos, argument in parens
	Paren                // parenthesized subexpression starting at pos
	Literal              // number starting at pos
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind

// looser reports whether k binds less tightly than than.
func (k Kind) looser(than Kind) bool {
	return k < than
}

// binary reports whether k combines two operands.
func (k Kind) binary() bool {
	return k <= Exponent
}
