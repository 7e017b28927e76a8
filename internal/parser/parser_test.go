package parser_test

import (
	"testing"

	"modlint/internal/ast"
	"modlint/internal/lexer"
	"modlint/internal/parser"
	"modlint/internal/source"
)

func findOps(t *testing.T, input string) []ast.FormatOp {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	return parser.FindFormatOps(lx.Tokens())
}

func findOne(t *testing.T, input string) ast.FormatOp {
	t.Helper()
	ops := findOps(t, input)
	if len(ops) != 1 {
		t.Fatalf("FindFormatOps(%q) found %d ops, want 1", input, len(ops))
	}
	return ops[0]
}

func TestRightOperandShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ast.Kind
	}{
		{"string constant", `"%s" % "x"`, ast.KindConstant},
		{"int constant", `"%d" % 3`, ast.KindConstant},
		{"float constant", `"%f" % 2.5`, ast.KindConstant},
		{"none constant", `"%s" % None`, ast.KindConstant},
		{"true constant", `"%s" % True`, ast.KindConstant},
		{"name", `"%d" % count`, ast.KindName},
		{"tuple", `"%d %s" % (1, "x")`, ast.KindTuple},
		{"empty tuple", `"%s" % ()`, ast.KindTuple},
		{"dict", `"%(a)d" % {"a": 1}`, ast.KindDict},
		{"empty dict", `"%(a)s" % {}`, ast.KindDict},
		{"call", `"%s" % f()`, ast.KindOther},
		{"attribute", `"%s" % obj.attr`, ast.KindOther},
		{"subscript", `"%s" % xs[0]`, ast.KindOther},
		{"list display", `"%s" % [1, 2]`, ast.KindOther},
		{"set display", `"%s" % {1, 2}`, ast.KindOther},
		{"unary minus", `"%d" % -n`, ast.KindOther},
		{"dict comprehension", `"%s" % {k: v for k in ks}`, ast.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := findOne(t, tt.input)
			if op.Right.Kind != tt.kind {
				t.Fatalf("right operand of %q = %v, want %v", tt.input, op.Right.Kind, tt.kind)
			}
		})
	}
}

func TestConstantKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.ConstKind
	}{
		{`"%s" % "x"`, ast.ConstString},
		{`"%d" % 3`, ast.ConstInt},
		{`"%f" % 2.5`, ast.ConstFloat},
		{`"%s" % 3j`, ast.ConstOther},
		{`"%s" % None`, ast.ConstOther},
		{`"%s" % b"x"`, ast.ConstOther},
		{`"%s" % f"x{y}"`, ast.ConstOther},
	}
	for _, tt := range tests {
		op := findOne(t, tt.input)
		if op.Right.Kind != ast.KindConstant {
			t.Errorf("right of %q = %v, want Constant", tt.input, op.Right.Kind)
			continue
		}
		if op.Right.Const != tt.kind {
			t.Errorf("const kind of %q = %v, want %v", tt.input, op.Right.Const, tt.kind)
		}
	}
}

func TestStringValueDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"%s" % "plain"`, "plain"},
		{`"%s" % "tab\there"`, "tab\there"},
		{`"%s" % r"raw\t"`, `raw\t`},
		{`"%s" % "one" "two"`, "onetwo"},
		{`"%s" % "\x41B"`, "AB"},
	}
	for _, tt := range tests {
		op := findOne(t, tt.input)
		if op.Right.Const != ast.ConstString {
			t.Errorf("right of %q is not a string constant", tt.input)
			continue
		}
		if op.Right.StrVal != tt.want {
			t.Errorf("decoded value of %q = %q, want %q", tt.input, op.Right.StrVal, tt.want)
		}
	}
}

func TestTupleElements(t *testing.T) {
	op := findOne(t, `"%d %s %s" % (1, name, "x")`)
	if op.Right.Kind != ast.KindTuple {
		t.Fatalf("right = %v, want Tuple", op.Right.Kind)
	}
	if len(op.Right.Elts) != 3 {
		t.Fatalf("tuple has %d elements, want 3", len(op.Right.Elts))
	}
	wantKinds := []ast.Kind{ast.KindConstant, ast.KindName, ast.KindConstant}
	for i, want := range wantKinds {
		if op.Right.Elts[i].Kind != want {
			t.Errorf("element %d = %v, want %v", i, op.Right.Elts[i].Kind, want)
		}
	}
}

func TestParenthesizedSingleKeepsShape(t *testing.T) {
	// (x) is not a tuple.
	op := findOne(t, `"%d" % (n)`)
	if op.Right.Kind != ast.KindName {
		t.Fatalf("right of parenthesized name = %v, want Name", op.Right.Kind)
	}

	// (x,) is.
	op = findOne(t, `"%d" % (n,)`)
	if op.Right.Kind != ast.KindTuple {
		t.Fatalf("right of one-tuple = %v, want Tuple", op.Right.Kind)
	}
	if len(op.Right.Elts) != 1 {
		t.Fatalf("one-tuple has %d elements", len(op.Right.Elts))
	}
}

func TestDictEntries(t *testing.T) {
	op := findOne(t, `"%(a)d %(b)s" % {"a": 1, "b": name, **extra}`)
	if op.Right.Kind != ast.KindDict {
		t.Fatalf("right = %v, want Dict", op.Right.Kind)
	}
	if len(op.Right.Keys) != 3 || len(op.Right.Values) != 3 {
		t.Fatalf("dict has %d/%d keys/values, want 3/3", len(op.Right.Keys), len(op.Right.Values))
	}
	if op.Right.Keys[0] == nil || op.Right.Keys[0].StrVal != "a" {
		t.Error("first key is not the string \"a\"")
	}
	if op.Right.Keys[2] != nil {
		t.Error("** entry should have a nil key")
	}
}

func TestImplicitConcatenationOnLeft(t *testing.T) {
	op := findOne(t, `"start %d" " end %s" % (1, "x")`)
	if op.Right.Kind != ast.KindTuple {
		t.Fatalf("right = %v, want Tuple", op.Right.Kind)
	}
	if op.Left.Start >= op.Left.End {
		t.Fatal("left span is empty")
	}
}

func TestStatementBoundaryBreaksConcatenation(t *testing.T) {
	// Two statements; only the second line is a format operation.
	ops := findOps(t, "\"first\"\n\"second %d\" % 2")
	if len(ops) != 1 {
		t.Fatalf("found %d ops, want 1", len(ops))
	}
	if ops[0].Right.Kind != ast.KindConstant || ops[0].Right.Const != ast.ConstInt {
		t.Fatalf("right operand = %+v, want int constant", ops[0].Right)
	}
}

func TestPercentBindsBeforeBinaryOperators(t *testing.T) {
	// "%d" % x + y parses as ("%d" % x) + y; the right operand is just x.
	op := findOne(t, `"%d" % x + y`)
	if op.Right.Kind != ast.KindName || op.Right.Name != "x" {
		t.Fatalf("right operand = %+v, want name x", op.Right)
	}
}

func TestMultipleOpsPerFile(t *testing.T) {
	input := "a = \"%d\" % 1\nb = \"%s\" % name\n"
	ops := findOps(t, input)
	if len(ops) != 2 {
		t.Fatalf("found %d ops, want 2", len(ops))
	}
}

func TestNonFormatPercentIgnored(t *testing.T) {
	tests := []string{
		"x = a % b",
		"x %= 3",
		`x = 10 % "nope"`,
	}
	for _, input := range tests {
		if ops := findOps(t, input); len(ops) != 0 {
			t.Errorf("FindFormatOps(%q) found %d ops, want 0", input, len(ops))
		}
	}
}

func TestUnparseableOperandSkipped(t *testing.T) {
	// Unclosed bracket on the right; the op is dropped rather than guessed at.
	ops := findOps(t, `"%s" % (unclosed`)
	if len(ops) != 0 {
		t.Fatalf("found %d ops, want 0", len(ops))
	}
}
