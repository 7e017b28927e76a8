// Package cformat parses legacy percent-style format strings into their
// conversion directives, following CPython's %-formatting mini-language:
//
//	%[(key)][flags][width][.precision][length]conversion
//
// Only the pieces the lint checks need are retained on each Spec: the
// conversion character and the optional mapping key. Flags, width,
// precision, and length modifiers are validated and discarded. The "%%"
// escape is literal text and yields no Spec.
package cformat

import (
	"errors"
	"fmt"
	"strings"
)

// Spec is one parsed conversion directive.
type Spec struct {
	// Char is the conversion character ('d', 's', ...).
	Char rune
	// Key is the mapping key for keyed directives such as %(name)s.
	Key string
	// HasKey distinguishes %(x)s from positional %s.
	HasKey bool
	// Start is the byte offset of the '%' inside the payload.
	Start int
}

// Conversion characters CPython accepts, plus 'n' which pylint's table has
// always carried along.
const conversions = "diouxXeEfFgGbcrsan%"

const (
	flagChars       = "#0- +"
	lengthModifiers = "hlL"
)

var (
	ErrTruncated     = errors.New("format string ends in the middle of a directive")
	ErrUnmatchedKey  = errors.New("unmatched parenthesis in mapping key")
	errBadConversion = errors.New("unsupported format character")
)

// Parse returns the directives of payload in order. A nil error with an
// empty slice means the string contains no directives at all.
func Parse(payload string) ([]Spec, error) {
	var specs []Spec

	i := 0
	for i < len(payload) {
		if payload[i] != '%' {
			i++
			continue
		}
		start := i
		i++

		if i < len(payload) && payload[i] == '%' {
			// Literal percent escape.
			i++
			continue
		}

		spec, next, err := parseSpec(payload, i)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", start, err)
		}
		spec.Start = start
		specs = append(specs, spec)
		i = next
	}

	return specs, nil
}

// parseSpec parses one directive body starting just past the '%'.
func parseSpec(s string, i int) (Spec, int, error) {
	var spec Spec

	// Mapping key.
	if i < len(s) && s[i] == '(' {
		depth := 1
		j := i + 1
		for j < len(s) && depth > 0 {
			switch s[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			j++
		}
		if depth != 0 {
			return spec, i, ErrUnmatchedKey
		}
		spec.Key = s[i+1 : j-1]
		spec.HasKey = true
		i = j
	}

	// Flags.
	for i < len(s) && strings.ContainsRune(flagChars, rune(s[i])) {
		i++
	}

	// Minimum width: digits or '*'.
	if i < len(s) && s[i] == '*' {
		i++
	} else {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}

	// Precision. CPython treats a bare '.' as precision 0, so the digits
	// are optional.
	if i < len(s) && s[i] == '.' {
		i++
		if i < len(s) && s[i] == '*' {
			i++
		} else {
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
		}
	}

	// Length modifier, accepted and ignored like CPython does.
	if i < len(s) && strings.ContainsRune(lengthModifiers, rune(s[i])) {
		i++
	}

	if i >= len(s) {
		return spec, i, ErrTruncated
	}
	c := rune(s[i])
	if !strings.ContainsRune(conversions, c) {
		return spec, i, fmt.Errorf("%w: %q", errBadConversion, c)
	}
	spec.Char = c
	return spec, i + 1, nil
}
