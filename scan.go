package calc

import "unicode"

// split finds the construct in text[start:end] that binds loosest, which is
// the one to evaluate last. It scans from the right edge to the left so that
// the first addition or subtraction it finds is the rightmost one, making
// chains of them associate to the left. The result position is the offset
// of the operator for binary kinds, of the open bracket for Paren, of the
// second letter of the name for Function, and of the leftmost character
// scanned as part of the number for Literal.
func split(text []rune, start, end int) (int, Kind, error) {
	depth := 0
	best := Literal
	pos := start
	if end > start {
		pos = end - 1
	}
	// closes holds the offsets of close brackets not yet matched.
	var closes []int
scan:
	for i := end - 1; i >= start; i-- {
		c := text[i]
		// prev is the character before c in reading order, limited to the
		// range being scanned.
		var prev rune
		if i > start {
			prev = text[i-1]
		}
		switch {
		case c == ')':
			depth++
			closes = append(closes, i)
		case c == '(':
			depth--
			if depth < 0 {
				// Nothing to the right can close this.
				return i, best, &BracketError{Off: i, Depth: depth}
			}
			closes = closes[:len(closes)-1]
			if depth == 0 && Paren.looser(best) {
				best, pos = Paren, i
			}
		case isDigit(c):
			if best == Literal {
				pos = i
			}
		case depth != 0:
			// Only bracket counting happens inside brackets.
		case c == '+':
			if Addition.looser(best) {
				best, pos = Addition, i
			}
		case c == '-':
			if Subtraction.looser(best) {
				// A minus after a number or a closing bracket is binary.
				// Anything else is the sign of what follows it. A sign
				// on the right operand of an operator already found stays
				// inside that operand.
				switch {
				case isDigit(prev) || prev == ')':
					best, pos = Subtraction, i
				case !best.binary():
					pos = i
				}
			}
		case c == '/':
			if Division.looser(best) {
				best, pos = Division, i
			}
		case c == '*':
			if Multiplication.looser(best) {
				best, pos = Multiplication, i
			}
		case c == '^':
			if Exponent.looser(best) {
				best, pos = Exponent, i
			}
		case c == '.':
			if best == Literal {
				pos = i
			}
		case unicode.IsLetter(c):
			if !best.looser(Function) && unicode.IsLetter(prev) {
				best, pos = Function, i
			}
		}
		if best == Addition || best == Subtraction {
			break scan
		}
	}
	if depth != 0 {
		return closes[0], best, &BracketError{Off: closes[0], Depth: depth}
	}
	return pos, best, nil
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
