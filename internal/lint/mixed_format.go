package lint

import (
	"modlint/internal/diag"
)

// checkMixedFormatString is the mixed-format-string (E1302) check: a format
// string that mixes keyed directives (%(name)s) with positional ones (%s)
// always fails at runtime, whatever the argument types are.
func checkMixedFormatString(cx Context) {
	specs, ok := collectDirectives(cx)
	if !ok {
		return
	}

	keyed, positional := 0, 0
	for _, spec := range specs {
		if spec.Char == '%' {
			// Literal percent, consumes no argument.
			continue
		}
		if spec.HasKey {
			keyed++
		} else {
			positional++
		}
	}

	if keyed > 0 && positional > 0 {
		cx.Reporter.Report(diag.LintMixedFormatString, diag.SevError, cx.Op.Left,
			"format string mixes keyed and positional directives", nil)
	}
}
