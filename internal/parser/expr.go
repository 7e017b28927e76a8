package parser

import (
	"modlint/internal/ast"
	"modlint/internal/token"
)

// binaryConnector reports whether the token continues an expression after a
// complete operand. Everything joined this way collapses into an opaque
// node: the checks only care that the result is no longer a plain constant
// or name.
func binaryConnector(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.StarStar,
		token.Slash, token.SlashSlash, token.Percent, token.At,
		token.Amp, token.Pipe, token.Caret, token.Shl, token.Shr,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.EqEq, token.BangEq,
		token.KwAnd, token.KwOr, token.KwNot, token.KwIn, token.KwIs,
		token.KwIf, token.KwElse, token.Walrus:
		return true
	default:
		return false
	}
}

// parseExpr parses a full expression (binary operators included) inside
// brackets. The result shape stays precise only for single operands;
// any operator chain degrades to KindOther.
func (p *parser) parseExpr() (*ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	for binaryConnector(p.peek().Kind) {
		p.next()
		rhs, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		lhs = ast.Opaque(lhs.Span.Cover(rhs.Span))
	}

	return lhs, true
}

// parseUnary parses a prefix-operator chain followed by a postfix
// expression. Used directly for the right operand of '%', which binds
// tighter than any binary operator that may follow it.
func (p *parser) parseUnary() (*ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Plus, token.Minus, token.Tilde, token.KwNot, token.KwAwait,
		token.Star, token.StarStar:
		op := p.next()
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return ast.Opaque(op.Span.Cover(inner.Span)), true

	case token.KwLambda:
		return p.parseLambda()
	}

	return p.parsePostfix()
}

func (p *parser) parseLambda() (*ast.Expr, bool) {
	kw := p.next()
	// Parameter list runs to the first top-level colon.
	for p.peek().Kind != token.Colon {
		switch p.peek().Kind {
		case token.EOF, token.Newline:
			return nil, false
		case token.LParen, token.LBracket, token.LBrace:
			p.next()
			if !p.skipBalanced() {
				return nil, false
			}
			continue
		}
		p.next()
	}
	p.next() // ':'
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return ast.Opaque(kw.Span.Cover(body.Span)), true
}

// parsePostfix parses an atom plus call/subscript/attribute trailers.
// Any trailer makes the expression opaque.
func (p *parser) parsePostfix() (*ast.Expr, bool) {
	e, ok := p.parseAtom()
	if !ok {
		return nil, false
	}

	for {
		switch p.peek().Kind {
		case token.Dot:
			p.next()
			attr := p.next()
			if attr.Kind != token.Ident && !attr.IsKeyword() {
				return nil, false
			}
			e = ast.Opaque(e.Span.Cover(attr.Span))

		case token.LParen, token.LBracket:
			open := p.next()
			if !p.skipBalanced() {
				return nil, false
			}
			closeSpan := p.at(p.pos - 1).Span
			e = ast.Opaque(e.Span.Cover(open.Span).Cover(closeSpan))

		default:
			return e, true
		}
	}
}

func (p *parser) parseAtom() (*ast.Expr, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.StringLit:
		return p.parseStringGroup()

	case token.IntLit:
		p.next()
		return ast.Constant(tok.Span, ast.ConstInt), true

	case token.FloatLit:
		p.next()
		return ast.Constant(tok.Span, ast.ConstFloat), true

	case token.ImagLit:
		p.next()
		return ast.Constant(tok.Span, ast.ConstOther), true

	case token.KwTrue, token.KwFalse, token.KwNone:
		p.next()
		return ast.Constant(tok.Span, ast.ConstOther), true

	case token.Ellipsis:
		p.next()
		return ast.Constant(tok.Span, ast.ConstOther), true

	case token.Ident:
		p.next()
		return ast.NameRef(tok.Span, tok.Text), true

	case token.LParen:
		return p.parseParenthesized()

	case token.LBracket:
		open := p.next()
		if !p.skipBalanced() {
			return nil, false
		}
		return ast.Opaque(open.Span.Cover(p.at(p.pos - 1).Span)), true

	case token.LBrace:
		return p.parseBraced()

	default:
		return nil, false
	}
}

// parseStringGroup consumes adjacent string literals as one implicitly
// concatenated constant. Bytes and f-string segments make the value
// statically opaque, so those come back as ConstOther.
func (p *parser) parseStringGroup() (*ast.Expr, bool) {
	first := p.next()
	span := first.Span
	plain := true

	value, ok := decodeStringLiteral(first.Text)
	if !ok {
		plain = false
	}

	for p.peek().Kind == token.StringLit {
		seg := p.next()
		span = span.Cover(seg.Span)
		segVal, segOK := decodeStringLiteral(seg.Text)
		if !segOK {
			plain = false
			continue
		}
		value += segVal
	}

	if !plain {
		return ast.Constant(span, ast.ConstOther), true
	}
	return ast.StringConstant(span, value), true
}

func (p *parser) parseParenthesized() (*ast.Expr, bool) {
	open := p.next()

	if p.peek().Kind == token.RParen {
		closing := p.next()
		return &ast.Expr{Kind: ast.KindTuple, Span: open.Span.Cover(closing.Span)}, true
	}

	if p.peek().Kind == token.KwYield {
		if !p.skipBalanced() {
			return nil, false
		}
		return ast.Opaque(open.Span.Cover(p.at(p.pos - 1).Span)), true
	}

	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	// Generator expression.
	if k := p.peek().Kind; k == token.KwFor || k == token.KwAsync {
		if !p.skipBalanced() {
			return nil, false
		}
		return ast.Opaque(open.Span.Cover(p.at(p.pos - 1).Span)), true
	}

	elts := []*ast.Expr{first}
	sawComma := false
	for p.eat(token.Comma) {
		sawComma = true
		if p.peek().Kind == token.RParen {
			break
		}
		elt, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		elts = append(elts, elt)
	}

	if p.peek().Kind != token.RParen {
		return nil, false
	}
	closing := p.next()
	span := open.Span.Cover(closing.Span)

	if !sawComma {
		// Plain parenthesized expression; keep the inner shape.
		return first, true
	}
	return &ast.Expr{Kind: ast.KindTuple, Span: span, Elts: elts}, true
}

// parseBraced parses a dict display. Set displays and comprehensions are
// opaque; the checks cannot align directives against them anyway.
func (p *parser) parseBraced() (*ast.Expr, bool) {
	open := p.next()

	if p.peek().Kind == token.RBrace {
		closing := p.next()
		return &ast.Expr{Kind: ast.KindDict, Span: open.Span.Cover(closing.Span)}, true
	}

	var keys, values []*ast.Expr

	for {
		if p.eat(token.StarStar) {
			v, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			keys = append(keys, nil)
			values = append(values, v)
		} else {
			k, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			if !p.eat(token.Colon) {
				// Set display or comprehension.
				if !p.skipBalanced() {
					return nil, false
				}
				return ast.Opaque(open.Span.Cover(p.at(p.pos - 1).Span)), true
			}
			v, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			keys = append(keys, k)
			values = append(values, v)
		}

		if k := p.peek().Kind; k == token.KwFor || k == token.KwAsync {
			if !p.skipBalanced() {
				return nil, false
			}
			return ast.Opaque(open.Span.Cover(p.at(p.pos - 1).Span)), true
		}

		if p.eat(token.Comma) {
			if p.peek().Kind == token.RBrace {
				break
			}
			continue
		}
		break
	}

	if p.peek().Kind != token.RBrace {
		return nil, false
	}
	closing := p.next()

	return &ast.Expr{
		Kind:   ast.KindDict,
		Span:   open.Span.Cover(closing.Span),
		Keys:   keys,
		Values: values,
	}, true
}
