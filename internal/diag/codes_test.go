package diag_test

import (
	"testing"

	"modlint/internal/diag"
)

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LintBadFormatType, "E1307"},
		{diag.LintMixedFormatString, "E1302"},
		{diag.LexUnterminatedString, "LEX1002"},
		{diag.LexUnknownChar, "LEX1001"},
		{diag.SynUnexpectedToken, "SYN2001"},
		{diag.IOLoadFileError, "IO4001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLintCodeForID(t *testing.T) {
	code, ok := diag.LintCodeForID("E1307")
	if !ok || code != diag.LintBadFormatType {
		t.Fatalf("LintCodeForID(E1307) = %v, %v", code, ok)
	}
	if _, ok := diag.LintCodeForID("E9999"); ok {
		t.Fatal("unknown rule ID resolved")
	}
}

func TestSeverityLabels(t *testing.T) {
	tests := []struct {
		sev  diag.Severity
		want string
	}{
		{diag.SevInfo, "INFO"},
		{diag.SevWarning, "WARNING"},
		{diag.SevError, "ERROR"},
		{diag.Severity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := diag.NewBag(2)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{Code: diag.LintBadFormatType})
	}
	if bag.Len() != 2 {
		t.Fatalf("bag holds %d items, want capped 2", bag.Len())
	}
}
