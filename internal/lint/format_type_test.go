package lint_test

import (
	"testing"

	"modlint/internal/diag"
	"modlint/internal/lexer"
	"modlint/internal/lint"
	"modlint/internal/parser"
	"modlint/internal/source"
)

// runChecks lexes a one-statement Python snippet, finds its format
// operations, and runs every registered check over them.
func runChecks(t *testing.T, input string) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.py", []byte(input))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	ops := parser.FindFormatOps(lx.Tokens())

	bag := diag.NewBag(16)
	reporter := diag.BagReporter{Bag: bag}
	for _, op := range ops {
		for _, check := range lint.All() {
			check.Run(lint.Context{File: file, Op: op, Reporter: reporter})
		}
	}
	return bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	var codes []diag.Code
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

func expectClean(t *testing.T, input string) {
	t.Helper()
	if bag := runChecks(t, input); bag.Len() != 0 {
		t.Fatalf("%q flagged: %v", input, codesOf(bag))
	}
}

func expectFlagged(t *testing.T, input string, code diag.Code) {
	t.Helper()
	bag := runChecks(t, input)
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("%q not flagged with %v, got %v", input, code, codesOf(bag))
}

func TestSingleConstant(t *testing.T) {
	invalid := []string{
		`"%d" % "1"`,
		`"%x" % "ff"`,
		`"%f" % "2.5"`,
		`"%d" % b"1"`,
		`"%d" % None`,
		`"%x" % 1.5`,
		`"%c" % 2.5`,
		// %r renders via repr(), but the type table treats it as opaque and
		// only trusts it against unresolvable operands.
		`"%r" % "x"`,
		// A bare '.' is precision 0, not a parse error, so the float
		// directive is still checked.
		`"%.f" % "x"`,
	}
	for _, input := range invalid {
		expectFlagged(t, input, diag.LintBadFormatType)
	}

	valid := []string{
		`"%d" % 1`,
		`"%d" % 1.5`,
		`"%f" % 1`,
		`"%f" % 2.5`,
		`"%.f" % 2.5`,
		`"%x" % 255`,
		`"%o" % 8`,
		`"%c" % 65`,
		`"%s" % "anything"`,
		`"%s" % 42`,
		`"%s" % None`,
	}
	for _, input := range valid {
		expectClean(t, input)
	}
}

func TestStringDirectiveAcceptsEverything(t *testing.T) {
	inputs := []string{
		`"%s" % 1`,
		`"%s" % 2.5`,
		`"%s" % "x"`,
		`"%s" % True`,
		`"%s" % [1, 2]`,
		`"%s" % {"a": 1}`,
		`"%s" % obj.attr`,
		`"%s" % f()`,
	}
	for _, input := range inputs {
		expectClean(t, input)
	}
}

func TestTupleOperand(t *testing.T) {
	expectClean(t, `"%d %s" % (1, "x")`)
	expectClean(t, `"%d %f %s" % (1, 2.5, "x")`)
	expectFlagged(t, `"%d %s" % ("1", "x")`, diag.LintBadFormatType)
	expectFlagged(t, `"%s %x" % ("x", 1.5)`, diag.LintBadFormatType)

	// Names inside a tuple are unresolvable, so they pass.
	expectClean(t, `"%d %s" % (count, name)`)
	expectClean(t, `"%d" % (n,)`)

	// Non-constant values only satisfy %s.
	expectClean(t, `"%s" % (f(),)`)
	expectFlagged(t, `"%d" % (f(),)`, diag.LintBadFormatType)

	// More directives than values is broken code, not a type error.
	expectClean(t, `"%d %d" % (1,)`)

	// Extra values are fine for this check.
	expectClean(t, `"%d" % (1, 2)`)
}

func TestDictOperand(t *testing.T) {
	expectClean(t, `"%(a)d" % {"a": 1}`)
	expectClean(t, `"%(a)d %(b)s" % {"a": 1, "b": "x"}`)
	expectFlagged(t, `"%(a)d" % {"a": "x"}`, diag.LintBadFormatType)
	expectFlagged(t, `"%(a)x" % {"a": 1.5}`, diag.LintBadFormatType)

	// Name values pass.
	expectClean(t, `"%(a)d" % {"a": count}`)

	// Entries the format string never mentions are ignored.
	expectClean(t, `"%(a)d" % {"a": 1, "b": "unused"}`)

	// **unpacking makes the mapping unknowable, but entries are checked
	// in written order: a mismatch before the ** entry still fires.
	expectClean(t, `"%(a)d" % {**kwargs}`)
	expectClean(t, `"%(a)d" % {**kwargs, "a": "x"}`)
	expectFlagged(t, `"%(a)d" % {"a": "x", **kwargs}`, diag.LintBadFormatType)

	// Non-string keys cannot be matched statically.
	expectClean(t, `"%(a)d" % {1: "x"}`)
	expectClean(t, `"%(a)d" % {key: "x"}`)

	// More directives than entries is under-supply, not a type error.
	expectClean(t, `"%(a)d %(b)d" % {"a": "x"}`)

	// Non-constant dict values only satisfy %s.
	expectFlagged(t, `"%(a)d" % {"a": f()}`, diag.LintBadFormatType)
	expectClean(t, `"%(a)s" % {"a": f()}`)
}

func TestNameOperandNeverFlagged(t *testing.T) {
	inputs := []string{
		`"%d" % count`,
		`"%x" % value`,
		`"%f %d" % args`,
	}
	for _, input := range inputs {
		expectClean(t, input)
	}
}

func TestOpaqueOperand(t *testing.T) {
	// Exactly one %s is the only safe assumption.
	expectClean(t, `"%s" % f()`)
	expectClean(t, `"%s" % obj.attr`)
	expectFlagged(t, `"%d" % f()`, diag.LintBadFormatType)
	expectFlagged(t, `"%x" % obj.attr`, diag.LintBadFormatType)
	expectFlagged(t, `"%d" % -n`, diag.LintBadFormatType)

	// Multiple directives against an opaque operand: not analyzable.
	expectClean(t, `"%d %d" % pair()`)
}

func TestPercentEscape(t *testing.T) {
	expectClean(t, `"100%%" % ()`)
	expectClean(t, `"%d%%" % 5`)
	expectFlagged(t, `"%d%%" % "5"`, diag.LintBadFormatType)
}

func TestImplicitConcatenation(t *testing.T) {
	expectFlagged(t, `"a %d" " b" % "x"`, diag.LintBadFormatType)
	expectClean(t, `"a %d" " b %s" % (1, "x")`)
	expectFlagged(t, `"a %d" " b %s" % ("x", "y")`, diag.LintBadFormatType)
}

func TestUnparsableFormatStringSkipped(t *testing.T) {
	// %z is not a conversion; the segment contributes no directives.
	expectClean(t, `"%z" % "x"`)
	// A truncated directive likewise.
	expectClean(t, `"abc %" % "x"`)
}

func TestRawAndPrefixedFormatStrings(t *testing.T) {
	expectFlagged(t, `r"%d" % "x"`, diag.LintBadFormatType)
	expectClean(t, `r"%d" % 1`)
}

func TestMixedFormatString(t *testing.T) {
	expectFlagged(t, `"%(a)s %s" % name`, diag.LintMixedFormatString)
	expectFlagged(t, `"%(a)d and %d" % values`, diag.LintMixedFormatString)
	expectClean(t, `"%(a)s %(b)s" % mapping`)
	expectClean(t, `"%s %s" % pair`)
	// Literal percent does not count as positional.
	expectClean(t, `"%(a)s at 100%%" % mapping`)
}

func TestEnabledFiltersChecks(t *testing.T) {
	disabled := map[diag.Code]bool{diag.LintMixedFormatString: true}
	checks := lint.Enabled(disabled)
	for _, c := range checks {
		if c.Code == diag.LintMixedFormatString {
			t.Fatal("disabled check still present")
		}
	}
	if len(checks) != len(lint.All())-1 {
		t.Fatalf("Enabled returned %d checks, want %d", len(checks), len(lint.All())-1)
	}
}
