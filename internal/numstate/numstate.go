// Package numstate implements the five-state number lexeme scanner:
// minus, zero, integer, fractional, exponent. It only locates the
// lexeme's bounds and classifies it as integer or float; converting the
// digits to a Go number is left to the caller.
package numstate

import "github.com/olagood/dbotjson/internal/scanner"

// Error reports the byte offset of the first byte that violates the
// number grammar.
type Error struct {
	Pos int
}

func (e *Error) Error() string { return "invalid number" }

// Result is the located number lexeme.
type Result struct {
	// Text is the raw number text, e.g. "-0.5e+2", sliced from the
	// input without copying.
	Text []byte
	// IsFloat is true when a fractional part or exponent was seen.
	IsFloat bool
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Scan locates a number lexeme starting at startPos (the offset of the
// leading '-' if the number is negative, otherwise the offset of the
// first digit). sc.Cur() must already be the first digit: the dispatcher
// consumes an optional leading '-' and the ZERO/1-9 transition before
// calling Scan, per the value dispatcher's table.
func Scan(sc *scanner.Scanner, startPos int) (Result, error) {
	var isFloat bool

	c := sc.Cur()
	if c == '0' {
		// ZERO has no integer-digit transition: a following digit is a
		// leading-zero violation ("01" is rejected at the '1').
		c = sc.Next()
		if isDigit(c) {
			return Result{}, &Error{Pos: sc.Pos() - 1}
		}
	} else {
		for c = sc.Next(); isDigit(c); c = sc.Next() {
		}
	}

	if c == '.' {
		isFloat = true
		c = sc.Next()
		if !isDigit(c) {
			return Result{}, &Error{Pos: sc.Pos() - 1}
		}
		for c = sc.Next(); isDigit(c); c = sc.Next() {
		}
	}

	if c == 'e' || c == 'E' {
		isFloat = true
		c = sc.Next()
		if c == '+' || c == '-' {
			c = sc.Next()
		}
		if !isDigit(c) {
			return Result{}, &Error{Pos: sc.Pos() - 1}
		}
		for c = sc.Next(); isDigit(c); c = sc.Next() {
		}
	}

	// The terminator byte belongs to whatever follows the number; give
	// it back to the caller.
	sc.Back()

	return Result{Text: sc.Slice(startPos, sc.Pos()), IsFloat: isFloat}, nil
}
