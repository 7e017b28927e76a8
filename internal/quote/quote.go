// Package quote identifies the delimiters of Python string literal tokens.
//
// A literal's raw text is prefix + opening quote + payload + closing quote.
// Leading returns prefix plus opening quote; Trailing returns the closing
// quote. When either cannot be identified the caller must treat the literal
// as unanalyzable.
package quote

import "strings"

// Ordered longest-first so triple quotes win over single ones.
var leadingPatterns = buildLeading()
var trailingPatterns = []string{`"""`, `'''`, `"`, `'`}

func buildLeading() []string {
	prefixes := []string{
		"rb", "rB", "Rb", "RB", "br", "bR", "Br", "BR",
		"rf", "rF", "Rf", "RF", "fr", "fR", "Fr", "FR",
		"r", "R", "b", "B", "u", "U", "f", "F",
		"",
	}
	quotes := []string{`"""`, `'''`, `"`, `'`}

	var out []string
	for _, q := range quotes {
		for _, p := range prefixes {
			out = append(out, p+q)
		}
	}
	return out
}

// Leading returns the prefix-plus-opening-quote of the raw literal text.
func Leading(raw string) (string, bool) {
	for _, pat := range leadingPatterns {
		if strings.HasPrefix(raw, pat) {
			return pat, true
		}
	}
	return "", false
}

// Trailing returns the closing quote of the raw literal text.
func Trailing(raw string) (string, bool) {
	for _, pat := range trailingPatterns {
		if strings.HasSuffix(raw, pat) {
			return pat, true
		}
	}
	return "", false
}

// Payload strips the identified delimiters, returning the inner text.
// ok is false when either delimiter is missing or the delimiters overlap.
func Payload(raw string) (string, bool) {
	lead, ok := Leading(raw)
	if !ok {
		return "", false
	}
	trail, ok := Trailing(raw)
	if !ok {
		return "", false
	}
	if len(lead)+len(trail) > len(raw) {
		return "", false
	}
	return raw[len(lead) : len(raw)-len(trail)], true
}

// IsRaw reports whether the literal's prefix marks it as a raw string.
func IsRaw(raw string) bool {
	lead, ok := Leading(raw)
	if !ok {
		return false
	}
	return strings.ContainsAny(lead, "rR")
}
