package lexer

import (
	"modlint/internal/diag"
	"modlint/internal/token"
)

// scanString consumes a string literal starting at mark. The mark may point
// at a prefix (r"", b'', rb"", f"" and case variants); the cursor is expected
// to stand on the opening quote. Both single- and triple-quoted forms are
// handled. The token text includes prefix and quotes.
func (lx *Lexer) scanString(start Mark) token.Token {
	quote := lx.cursor.Peek()

	triple := false
	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == quote && b1 == quote && b2 == quote {
		triple = true
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		lx.cursor.Bump()
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			// Consume the escape pair wholesale; validation is not the
			// tokenizer's job. This also keeps \' and \" from closing.
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}

		if b == quote {
			if !triple {
				lx.cursor.Bump()
				return lx.stringToken(start)
			}
			if lx.try3(quote, quote, quote) {
				return lx.stringToken(start)
			}
			lx.cursor.Bump()
			continue
		}

		if b == '\n' && !triple {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "EOL while scanning string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) stringToken(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// isStringPrefix reports whether text is a legal Python string literal
// prefix: any of r, b, u, f and the rb/br/rf/fr pairs, case-insensitive.
func isStringPrefix(text string) bool {
	switch len(text) {
	case 1:
		switch text[0] {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
			return true
		}
	case 2:
		lo := func(b byte) byte {
			if b >= 'A' && b <= 'Z' {
				return b + ('a' - 'A')
			}
			return b
		}
		a, b := lo(text[0]), lo(text[1])
		return (a == 'r' && (b == 'b' || b == 'f')) ||
			(b == 'r' && (a == 'b' || a == 'f'))
	}
	return false
}
