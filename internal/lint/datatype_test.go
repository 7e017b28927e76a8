package lint_test

import (
	"testing"

	"modlint/internal/lint"
)

func TestCompatibleWith(t *testing.T) {
	// value type -> directive types it satisfies
	tests := []struct {
		value      lint.DataType
		compatible []lint.DataType
	}{
		{lint.DataString, []lint.DataType{lint.DataString}},
		{lint.DataInteger, []lint.DataType{lint.DataInteger, lint.DataNumber}},
		{lint.DataFloat, []lint.DataType{lint.DataFloat, lint.DataNumber}},
		{lint.DataNumber, []lint.DataType{lint.DataNumber, lint.DataInteger, lint.DataFloat}},
		{lint.DataOther, nil},
	}

	all := []lint.DataType{
		lint.DataString, lint.DataInteger, lint.DataFloat, lint.DataNumber, lint.DataOther,
	}

	for _, tt := range tests {
		allowed := make(map[lint.DataType]bool, len(tt.compatible))
		for _, d := range tt.compatible {
			allowed[d] = true
		}
		for _, directive := range all {
			got := tt.value.CompatibleWith(directive)
			if got != allowed[directive] {
				t.Errorf("%v.CompatibleWith(%v) = %v, want %v",
					tt.value, directive, got, allowed[directive])
			}
		}
	}
}

func TestConversionType(t *testing.T) {
	tests := []struct {
		char rune
		want lint.DataType
	}{
		{'s', lint.DataString},
		{'n', lint.DataNumber},
		{'d', lint.DataNumber},
		{'b', lint.DataInteger},
		{'c', lint.DataInteger},
		{'o', lint.DataInteger},
		{'x', lint.DataInteger},
		{'X', lint.DataInteger},
		{'e', lint.DataFloat},
		{'E', lint.DataFloat},
		{'f', lint.DataFloat},
		{'F', lint.DataFloat},
		{'g', lint.DataFloat},
		{'G', lint.DataFloat},
		{'%', lint.DataFloat},
		{'r', lint.DataOther},
		{'a', lint.DataOther},
		{'i', lint.DataOther},
		{'u', lint.DataOther},
	}
	for _, tt := range tests {
		if got := lint.ConversionType(tt.char); got != tt.want {
			t.Errorf("ConversionType(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}
}
