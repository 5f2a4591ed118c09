package token

import (
	"strings"
	"unicode/utf8"
)

const hex = "0123456789abcdef"

// Quote writes v as a string literal delimited by q: backslash, the
// delimiter and control characters are escaped, as are U+2028 and U+2029.
// Everything else, including non-ASCII text, is written as is.
func Quote(v string, q byte) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte(q)
	for i := 0; i < len(v); {
		c := v[i]
		if c < utf8.RuneSelf {
			switch {
			case c == q || c == '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case c == '\b':
				b.WriteString(`\b`)
			case c == '\f':
				b.WriteString(`\f`)
			case c == '\n':
				b.WriteString(`\n`)
			case c == '\r':
				b.WriteString(`\r`)
			case c == '\t':
				b.WriteString(`\t`)
			case c < 0x20 || c == 0x7f:
				b.WriteString(`\u00`)
				b.WriteByte(hex[c>>4])
				b.WriteByte(hex[c&0xf])
			default:
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, sz := utf8.DecodeRuneInString(v[i:])
		switch {
		case r == utf8.RuneError && sz == 1:
			b.WriteString(`\ufffd`)
		case r == '\u2028':
			b.WriteString(`\u2028`)
		case r == '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteString(v[i : i+sz])
		}
		i += sz
	}
	b.WriteByte(q)
	return b.String()
}

// KeyText renders an object key for object-literal output: bare when it is
// an identifier, otherwise quoted with q.
func KeyText(k string, q byte) string {
	if IsIdentifier(k) {
		return k
	}
	return Quote(k, q)
}
