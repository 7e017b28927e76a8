package parser

import (
	"strconv"
	"strings"

	"modlint/internal/quote"
)

// decodeStringLiteral turns the raw token text of a string literal into its
// runtime value. ok is false when the value is not statically known as a
// str: bytes literals, f-strings, and literals whose delimiters cannot be
// identified.
func decodeStringLiteral(raw string) (string, bool) {
	lead, ok := quote.Leading(raw)
	if !ok {
		return "", false
	}
	if strings.ContainsAny(lead, "bBfF") {
		return "", false
	}
	payload, ok := quote.Payload(raw)
	if !ok {
		return "", false
	}
	if quote.IsRaw(raw) {
		return payload, true
	}
	return unescape(payload), true
}

// unescape processes backslash escapes the way CPython does for str
// literals. Unknown escapes keep the backslash verbatim.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}

		e := s[i+1]
		switch e {
		case '\n':
			i += 2 // line continuation
		case '\\', '\'', '"':
			b.WriteByte(e)
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case 'x':
			if i+3 < len(s) {
				if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 4
					continue
				}
			}
			b.WriteByte(c)
			i++
		case 'u', 'U':
			width := 4
			if e == 'U' {
				width = 8
			}
			if i+2+width <= len(s) {
				if v, err := strconv.ParseUint(s[i+2:i+2+width], 16, 32); err == nil {
					b.WriteRune(rune(v))
					i += 2 + width
					continue
				}
			}
			b.WriteByte(c)
			i++
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i + 1
			for j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			if v, err := strconv.ParseUint(s[i+1:j], 8, 32); err == nil {
				b.WriteRune(rune(v))
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
