// Package calc implements a small floating-point calculator.
//
// Expressions are written on one line without spaces: numbers, the binary
// operators + - * / ^, parentheses, and the functions sin, cos, tan, asin,
// acos, atan, floor, and ceil, e.g. "2*(1+sin(0.5))^2". Operators of equal
// precedence associate to the left, including ^, so "2^3^2" is 64.
//
// The evaluator works directly on character offsets. Each step scans a range
// of the input from right to left to find the construct that binds loosest,
// evaluates the pieces on either side, and combines them; there is no token
// stream or syntax tree. Errors report the offset of the character that
// caused them.
//
// Use Compact to strip whitespace from input typed by a person before
// passing it to Eval.
//
package calc
