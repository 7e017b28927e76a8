package lexer

import (
	"modlint/internal/source"
	"modlint/internal/token"
)

// Lexer produces Python tokens from a source file or a subrange of one.
// Indentation is not tracked: the checks work on expression shape, not on
// block structure. Logical newlines are emitted only at bracket depth zero,
// which is exactly what implicit string concatenation detection needs.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
	depth  int          // open ()/[]/{} nesting
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRange lexes only the [start, end) byte range of the file. Spans keep
// file-absolute offsets.
func NewRange(file *source.File, start, end uint32, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursorRange(file, start, end),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipBlank()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.emptySpan(),
			}
		}

		ch := lx.cursor.Peek()

		if ch == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.depth > 0 {
				// Inside brackets line breaks are insignificant.
				continue
			}
			return token.Token{Kind: token.Newline, Span: lx.cursor.SpanFrom(start), Text: "\n"}
		}

		var tok token.Token
		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf:
			tok = lx.scanIdentOrKeyword()

		case isDec(ch):
			tok = lx.scanNumber()

		case ch == '.' && lx.isNumberAfterDot():
			tok = lx.scanNumber()

		case ch == '"' || ch == '\'':
			tok = lx.scanString(lx.cursor.Mark())

		default:
			tok = lx.scanOperatorOrPunct()
		}

		lx.trackDepth(tok.Kind)
		return tok
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer into a slice ending with the EOF token.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) trackDepth(k token.Kind) {
	switch k {
	case token.LParen, token.LBracket, token.LBrace:
		lx.depth++
	case token.RParen, token.RBracket, token.RBrace:
		if lx.depth > 0 {
			lx.depth--
		}
	}
}

// skipBlank consumes spaces, tabs, form feeds, comments, and explicit
// line joins (backslash-newline). It stops at a bare newline.
func (lx *Lexer) skipBlank() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\f', '\r':
			lx.cursor.Bump()
		case '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case '\\':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
