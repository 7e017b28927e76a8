package lint

import (
	"modlint/internal/ast"
	"modlint/internal/diag"
	"modlint/internal/source"
)

// Context carries everything one check invocation may touch. Checks share
// no state: the driver may run them concurrently across expressions and
// files as long as the Reporter tolerates concurrent use.
type Context struct {
	File     *source.File
	Op       ast.FormatOp
	Reporter diag.Reporter
}

// Check is one registered lint rule.
type Check struct {
	Code diag.Code
	// Name is the pylint-compatible symbolic name.
	Name string
	Run  func(Context)
}

var registry = []Check{
	{Code: diag.LintBadFormatType, Name: "bad-string-format-type", Run: checkBadFormatType},
	{Code: diag.LintMixedFormatString, Name: "mixed-format-string", Run: checkMixedFormatString},
}

// All returns every registered check.
func All() []Check {
	out := make([]Check, len(registry))
	copy(out, registry)
	return out
}

// Enabled returns the registered checks minus the disabled codes.
func Enabled(disabled map[diag.Code]bool) []Check {
	var out []Check
	for _, c := range registry {
		if !disabled[c.Code] {
			out = append(out, c)
		}
	}
	return out
}
