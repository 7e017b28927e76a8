package lexer

import (
	"modlint/internal/diag"
	"modlint/internal/token"
)

// scanNumber consumes a Python numeric literal: decimal/hex/octal/binary
// integers with underscores, floats with fraction and exponent, and
// imaginary literals (trailing j/J). Malformed digits are reported but the
// literal is still consumed so lexing can continue.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// Radix-prefixed integers.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var digit func(byte) bool
		switch b1 {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = isOct
		case 'b', 'B':
			digit = isBin
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.eatDigits(digit) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "missing digits after radix prefix")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			return emit(token.IntLit)
		}
	}

	lx.eatDigits(isDec)

	// Fraction.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	} else if lx.cursor.Peek() == '.' {
		// "1." is a valid float; a bare leading "." never reaches here.
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits(isDec)
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if lx.eatDigits(isDec) {
			kind = token.FloatLit
		} else {
			// "1e" alone: the e belongs to the next token (e.g. a name).
			lx.cursor.Reset(mark)
		}
	}

	// Imaginary suffix.
	if b := lx.cursor.Peek(); b == 'j' || b == 'J' {
		lx.cursor.Bump()
		return emit(token.ImagLit)
	}

	return emit(kind)
}

// eatDigits consumes a run of digits with embedded underscores and reports
// whether at least one digit was seen.
func (lx *Lexer) eatDigits(digit func(byte) bool) bool {
	seen := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if digit(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if _, b1, ok := lx.cursor.Peek2(); ok && digit(b1) {
				lx.cursor.Bump()
				continue
			}
		}
		break
	}
	return seen
}
