package lexer

import (
	"modlint/internal/diag"
	"modlint/internal/token"
)

// scanIdentOrKeyword consumes an identifier and classifies it against the
// keyword table. A short identifier that turns out to be a string prefix
// directly followed by a quote re-dispatches into scanString so that r"..."
// and friends come back as a single StringLit token.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	if lx.cursor.Mark() == start {
		// Non-ASCII rune that cannot start an identifier. Consume it so
		// the lexer always makes progress.
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if !lx.cursor.EOF() {
		if q := lx.cursor.Peek(); (q == '"' || q == '\'') && isStringPrefix(text) {
			return lx.scanString(start)
		}
	}

	kind := token.LookupKeyword(text)
	return token.Token{Kind: kind, Span: sp, Text: text}
}
