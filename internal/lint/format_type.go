package lint

import (
	"modlint/internal/ast"
	"modlint/internal/cformat"
	"modlint/internal/diag"
)

// DirectiveAccepts reports whether one directive can format one literal
// constant. A string directive renders anything; a non-string directive
// never renders a non-numeric, non-string literal.
func DirectiveAccepts(spec cformat.Spec, c *ast.Expr) bool {
	format := ConversionType(spec.Char)
	if format == DataString {
		return true
	}
	value := ConstantType(c)
	if value == DataOther {
		return false
	}
	return value.CompatibleWith(format)
}

// checkBadFormatType is the bad-string-format-type (E1307) check.
func checkBadFormatType(cx Context) {
	specs, ok := collectDirectives(cx)
	if !ok {
		return
	}

	right := cx.Op.Right
	var valid bool
	switch right.Kind {
	case ast.KindConstant:
		valid = validConstant(specs, right)
	case ast.KindTuple:
		valid = validTuple(specs, right.Elts)
	case ast.KindDict:
		valid = validDict(specs, right.Keys, right.Values)
	case ast.KindName:
		// Unresolvable operand: assume the author knew its type.
		valid = true
	case ast.KindOther:
		valid = validOther(specs)
	default:
		valid = true
	}

	if !valid {
		cx.Reporter.Report(diag.LintBadFormatType, diag.SevError, cx.Op.Span,
			"format type does not match argument type", nil)
	}
}

// validConstant aligns the full directive list against a single constant.
// Anything but exactly one directive is not valid Python; leave that for
// the interpreter to complain about.
func validConstant(specs []cformat.Spec, c *ast.Expr) bool {
	if len(specs) != 1 {
		return true
	}
	return DirectiveAccepts(specs[0], c)
}

// validTuple aligns directives positionally against tuple elements.
func validTuple(specs []cformat.Spec, elts []*ast.Expr) bool {
	// More directives than values is already broken code; don't pile a
	// misleading type report on top.
	if len(specs) > len(elts) {
		return true
	}

	for i, spec := range specs {
		elt := elts[i]
		switch elt.Kind {
		case ast.KindConstant:
			if !DirectiveAccepts(spec, elt) {
				return false
			}
		case ast.KindName:
			continue
		case ast.KindTuple, ast.KindDict, ast.KindOther:
			// A non-constant value can only be assumed string-formattable.
			if spec.Char != 's' {
				return false
			}
		}
	}
	return true
}

// validDict aligns keyed directives against written dict entries.
func validDict(specs []cformat.Spec, keys, values []*ast.Expr) bool {
	if len(specs) > len(values) {
		return true
	}

	byKey := make(map[string]cformat.Spec, len(specs))
	for _, spec := range specs {
		if spec.HasKey {
			byKey[spec.Key] = spec
		}
	}

	for i, key := range keys {
		value := values[i]
		if key == nil {
			// **unpacking entry; the mapping contents are unknowable.
			return true
		}
		if key.Kind != ast.KindConstant || key.Const != ast.ConstString {
			// Non-string keys are not statically matchable.
			return true
		}
		spec, ok := byKey[key.StrVal]
		if !ok {
			return true
		}

		switch value.Kind {
		case ast.KindConstant:
			if !DirectiveAccepts(spec, value) {
				return false
			}
		case ast.KindName:
			continue
		case ast.KindTuple, ast.KindDict, ast.KindOther:
			if spec.Char != 's' {
				return false
			}
		}
	}
	return true
}

// validOther handles operands that are neither constant, sequence,
// mapping, nor name. Exactly one string directive is the only shape that
// is safe to assume.
func validOther(specs []cformat.Spec) bool {
	if len(specs) != 1 {
		return true
	}
	return specs[0].Char == 's'
}
