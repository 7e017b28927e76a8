// Package ast models the small slice of Python expression structure the
// lint checks classify: the right operand of a percent-format operation.
//
// The node set is deliberately closed. Every consumer switches exhaustively
// over Kind (and ConstKind below it), so adding a new shape is a
// compile-visible change rather than a silent fallthrough.
package ast

import (
	"modlint/internal/source"
)

// Kind discriminates expression shapes.
type Kind uint8

const (
	// KindConstant is a literal constant, see ConstKind.
	KindConstant Kind = iota
	// KindTuple is a positional sequence: (a, b), possibly empty.
	KindTuple
	// KindDict is a mapping display with parallel keys/values; a nil key
	// marks a **unpacking entry.
	KindDict
	// KindName is a bare name reference whose runtime type is unknown.
	KindName
	// KindOther is any expression the checks cannot see into: calls,
	// attribute access, subscripts, arithmetic, comprehensions, lambdas.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindTuple:
		return "Tuple"
	case KindDict:
		return "Dict"
	case KindName:
		return "Name"
	case KindOther:
		return "Other"
	}
	return "Unknown"
}

// ConstKind sub-discriminates literal constants.
type ConstKind uint8

const (
	// ConstString is a str literal with a statically known value.
	ConstString ConstKind = iota
	ConstInt
	ConstFloat
	// ConstOther covers True/False/None, Ellipsis, imaginary literals, and
	// literals whose value is not statically known (bytes, f-strings).
	ConstOther
)

func (k ConstKind) String() string {
	switch k {
	case ConstString:
		return "String"
	case ConstInt:
		return "Int"
	case ConstFloat:
		return "Float"
	case ConstOther:
		return "Other"
	}
	return "Unknown"
}

// Expr is one expression node. Only the fields matching Kind are set.
type Expr struct {
	Kind Kind
	Span source.Span

	// KindConstant.
	Const ConstKind
	// StrVal is the decoded string value for ConstString constants; dict
	// key lookup depends on it.
	StrVal string

	// KindTuple.
	Elts []*Expr

	// KindDict. Keys[i] == nil means the i-th entry has no written key.
	Keys   []*Expr
	Values []*Expr

	// KindName.
	Name string
}

// Constant builds a constant node.
func Constant(span source.Span, kind ConstKind) *Expr {
	return &Expr{Kind: KindConstant, Span: span, Const: kind}
}

// StringConstant builds a string constant carrying its decoded value.
func StringConstant(span source.Span, value string) *Expr {
	return &Expr{Kind: KindConstant, Span: span, Const: ConstString, StrVal: value}
}

// NameRef builds a bare name reference.
func NameRef(span source.Span, name string) *Expr {
	return &Expr{Kind: KindName, Span: span, Name: name}
}

// Opaque builds a KindOther node covering span.
func Opaque(span source.Span) *Expr {
	return &Expr{Kind: KindOther, Span: span}
}

// FormatOp is one `<string literal(s)> % <operand>` expression.
type FormatOp struct {
	// Span covers the whole operation, left literal through right operand.
	Span source.Span
	// Left covers the string literal segment(s) before the operator.
	Left source.Span
	// Right is the parsed right operand.
	Right *Expr
}
