package lint

import (
	"modlint/internal/cformat"
	"modlint/internal/lexer"
	"modlint/internal/quote"
	"modlint/internal/token"
)

// collectDirectives re-lexes the format operation in place, gathers the
// string literal segments before the operator (implicit concatenation
// contributes one segment each), strips their quoting, and parses every
// payload into conversion directives.
//
// ok is false when the operation is unanalyzable: no string segments, or a
// segment whose quote delimiters cannot be identified. A segment whose
// payload fails to parse as a format string is NOT fatal — it simply
// contributes no directives.
func collectDirectives(cx Context) ([]cformat.Spec, bool) {
	lx := lexer.NewRange(cx.File, cx.Op.Span.Start, cx.Op.Span.End, lexer.Options{})

	var segments []token.Token
scan:
	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.StringLit:
			segments = append(segments, tok)
		case token.Percent:
			// The format operator ends the left side.
			break scan
		case token.EOF:
			break scan
		}
	}

	if len(segments) == 0 {
		return nil, false
	}

	var specs []cformat.Spec
	for _, seg := range segments {
		payload, ok := quote.Payload(seg.Text)
		if !ok {
			// Unusual literal syntax; treat the whole operation as
			// unanalyzable rather than guessing.
			return nil, false
		}
		parsed, err := cformat.Parse(payload)
		if err != nil {
			continue
		}
		specs = append(specs, parsed...)
	}

	return specs, true
}
