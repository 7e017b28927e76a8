// Package parser locates percent-format operations in a Python token
// stream and parses their right operands into ast.Expr shapes.
//
// It is not a general Python parser. The driver only needs to know, for
// each `"literal" % operand` occurrence, how the operand is shaped —
// constant, tuple, dict, name, or something opaque. Anything the parser
// cannot make sense of is dropped silently: an operand we cannot parse is
// an operand we cannot check.
package parser

import (
	"modlint/internal/ast"
	"modlint/internal/token"
)

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) at(i int) token.Token {
	if i >= len(p.toks) {
		if n := len(p.toks); n > 0 {
			return p.toks[n-1] // trailing EOF
		}
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *parser) peek() token.Token {
	return p.at(p.pos)
}

func (p *parser) next() token.Token {
	t := p.at(p.pos)
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) eat(k token.Kind) bool {
	if p.peek().Kind == k {
		p.next()
		return true
	}
	return false
}

// FindFormatOps scans a token stream (as produced by lexer.Tokens) and
// returns every format operation whose left side starts with a string
// literal. Adjacent string literals form one implicitly concatenated left
// segment list.
func FindFormatOps(toks []token.Token) []ast.FormatOp {
	p := &parser{toks: toks}
	var ops []ast.FormatOp

	for p.peek().Kind != token.EOF {
		if p.peek().Kind != token.StringLit {
			p.next()
			continue
		}

		first := p.next()
		last := first
		for p.peek().Kind == token.StringLit {
			last = p.next()
		}

		if p.peek().Kind != token.Percent {
			continue
		}
		p.next() // '%'

		right, ok := p.parseUnary()
		if !ok {
			continue
		}

		left := first.Span.Cover(last.Span)
		ops = append(ops, ast.FormatOp{
			Span:  left.Cover(right.Span),
			Left:  left,
			Right: right,
		})
	}

	return ops
}

// skipBalanced consumes tokens until the currently open bracket closes.
// The opening token must already be consumed. Returns false on EOF.
func (p *parser) skipBalanced() bool {
	depth := 1
	for depth > 0 {
		switch p.peek().Kind {
		case token.EOF:
			return false
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		p.next()
	}
	return true
}
