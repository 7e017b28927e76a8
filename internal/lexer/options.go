package lexer

import (
	"modlint/internal/diag"
	"modlint/internal/source"
)

type Options struct {
	// Reporter may be nil: lexical problems are then dropped, but lexing
	// continues either way. The checks treat broken tokens as unanalyzable
	// rather than fatal.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
