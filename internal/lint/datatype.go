package lint

import (
	"modlint/internal/ast"
)

// DataType is the semantic lattice used to match conversion directives
// against argument values.
type DataType uint8

const (
	DataString DataType = iota
	DataInteger
	DataFloat
	// DataNumber is the shared supertype of integer- and float-compatible
	// directives and values.
	DataNumber
	// DataOther is the bottom type: compatible with nothing, matched by
	// nothing.
	DataOther
)

func (t DataType) String() string {
	switch t {
	case DataString:
		return "String"
	case DataInteger:
		return "Integer"
	case DataFloat:
		return "Float"
	case DataNumber:
		return "Number"
	case DataOther:
		return "Other"
	}
	return "Unknown"
}

// CompatibleWith reports whether a value of type t satisfies a directive of
// type other. The relation is evaluated value-against-directive only.
func (t DataType) CompatibleWith(other DataType) bool {
	switch t {
	case DataString:
		return other == DataString
	case DataInteger:
		return other == DataInteger || other == DataNumber
	case DataFloat:
		return other == DataFloat || other == DataNumber
	case DataNumber:
		return other == DataNumber || other == DataInteger || other == DataFloat
	case DataOther:
		return false
	}
	return false
}

// ConversionType classifies a conversion character.
func ConversionType(c rune) DataType {
	switch c {
	case 's':
		return DataString
	// The Python docs say %d is integer-only, but CPython accepts floats
	// for it too. The remaining integer conversions genuinely reject
	// floats, so they stay in their own class.
	case 'n', 'd':
		return DataNumber
	case 'b', 'c', 'o', 'x', 'X':
		return DataInteger
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		return DataFloat
	default:
		return DataOther
	}
}

// ConstantType classifies a literal constant node.
func ConstantType(c *ast.Expr) DataType {
	if c == nil || c.Kind != ast.KindConstant {
		return DataOther
	}
	switch c.Const {
	case ast.ConstString:
		return DataString
	// An int literal also satisfies every float conversion.
	case ast.ConstInt:
		return DataNumber
	case ast.ConstFloat:
		return DataFloat
	case ast.ConstOther:
		return DataOther
	}
	return DataOther
}
