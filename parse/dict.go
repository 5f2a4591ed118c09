package parse

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
)

func parseDict(d []byte, opts *parseOpts) (*ir.Node, error) {
	norm, offs, err := normalizeDict(d)
	if err != nil {
		return nil, err
	}
	p := newParser(norm, opts, offs)
	return p.document()
}

// dictNormalizer rewrites dict-literal text as json text. offs records,
// for every output byte, the input offset it was produced from, so that
// errors found in the output can be reported against the input.
type dictNormalizer struct {
	d    []byte
	out  []byte
	offs []int
}

func normalizeDict(d []byte) ([]byte, []int, error) {
	n := &dictNormalizer{
		d:    d,
		out:  make([]byte, 0, len(d)),
		offs: make([]int, 0, len(d)),
	}
	if err := n.run(); err != nil {
		return nil, nil, err
	}
	return n.out, n.offs, nil
}

func (n *dictNormalizer) emit(from int, s string) {
	n.out = append(n.out, s...)
	for range len(s) {
		n.offs = append(n.offs, from)
	}
}

func (n *dictNormalizer) emitByte(from int, c byte) {
	n.out = append(n.out, c)
	n.offs = append(n.offs, from)
}

func unsupported(off int, f string, args ...any) error {
	return &SyntaxError{
		Dialect: format.DictLiteralDialect,
		Msg:     fmt.Sprintf(f, args...),
		Offset:  off,
		Err:     ErrUnsupported,
	}
}

func (n *dictNormalizer) run() error {
	d := n.d
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\'' || c == '"':
			j, err := n.str(i)
			if err != nil {
				return err
			}
			i = j
		case c == '#':
			return unsupported(i, "comments are not supported")
		case c == '(':
			return unsupported(i, "tuples are not supported")
		case isWordStart(c):
			j := i + 1
			for j < len(d) && isWordPart(d[j]) {
				j++
			}
			word := string(d[i:j])
			if j < len(d) && (d[j] == '\'' || d[j] == '"') && isStringPrefix(word) {
				return unsupported(i, "string prefix %q is not supported", word)
			}
			switch word {
			case "True":
				word = "true"
			case "False":
				word = "false"
			case "None":
				word = "null"
			}
			n.emit(i, word)
			i = j
		case c >= '0' && c <= '9':
			j := i
			for j < len(d) && (isWordPart(d[j]) || d[j] == '.') {
				if d[j] == '_' {
					return unsupported(i, "numeric underscores are not supported")
				}
				j++
			}
			for k := i; k < j; k++ {
				n.emitByte(k, d[k])
			}
			i = j
		default:
			n.emitByte(i, c)
			i++
		}
	}
	return nil
}

// str converts the string literal starting at i to a double-quoted json
// string and returns the offset just past its closing quote.
func (n *dictNormalizer) str(i int) (int, error) {
	d := n.d
	q := d[i]
	if i+2 < len(d) && d[i+1] == q && d[i+2] == q {
		return 0, unsupported(i, "triple-quoted strings are not supported")
	}
	n.emit(i, `"`)
	j := i + 1
	for j < len(d) {
		c := d[j]
		switch {
		case c == q:
			n.emit(j, `"`)
			return j + 1, nil
		case c == '\n' || c == '\r':
			return 0, n.unterminated(i)
		case c == '"':
			n.emit(j, `\"`)
			j++
		case c == '\\':
			k, err := n.escape(j)
			if err != nil {
				return 0, err
			}
			j = k
		case c < 0x20:
			n.emit(j, fmt.Sprintf(`\u%04x`, c))
			j++
		default:
			n.emitByte(j, c)
			j++
		}
	}
	return 0, n.unterminated(i)
}

func (n *dictNormalizer) unterminated(i int) error {
	return &SyntaxError{
		Dialect: format.DictLiteralDialect,
		Msg:     "unterminated string",
		Offset:  i,
	}
}

// escape rewrites the escape sequence at i and returns the offset past it.
func (n *dictNormalizer) escape(i int) (int, error) {
	d := n.d
	if i+1 >= len(d) {
		return 0, n.unterminated(i)
	}
	c := d[i+1]
	switch c {
	case '\'':
		n.emit(i, `'`)
		return i + 2, nil
	case '"', '\\', 'b', 'f', 'n', 'r', 't', 'u':
		n.emit(i, string(d[i:i+2]))
		return i + 2, nil
	case 'a':
		n.emit(i, `\u0007`)
		return i + 2, nil
	case 'v':
		n.emit(i, `\u000b`)
		return i + 2, nil
	case '\n':
		return i + 2, nil
	case 'x':
		return n.hexEscape(i, 2)
	case 'U':
		return n.hexEscape(i, 8)
	case 'N':
		return 0, unsupported(i, "named unicode escapes are not supported")
	}
	if c >= '0' && c <= '7' {
		j := i + 1
		v := 0
		for j < len(d) && j < i+4 && d[j] >= '0' && d[j] <= '7' {
			v = v*8 + int(d[j]-'0')
			j++
		}
		n.emitRune(i, rune(v))
		return j, nil
	}
	// unknown escapes keep their backslash
	n.emit(i, `\\`)
	return i + 1, nil
}

func (n *dictNormalizer) hexEscape(i, digits int) (int, error) {
	d := n.d
	end := i + 2 + digits
	if end > len(d) {
		return 0, &SyntaxError{Dialect: format.DictLiteralDialect, Msg: "truncated escape", Offset: i}
	}
	v, err := strconv.ParseUint(string(d[i+2:end]), 16, 32)
	if err != nil || v > utf8.MaxRune {
		return 0, &SyntaxError{Dialect: format.DictLiteralDialect, Msg: fmt.Sprintf("bad escape %s", d[i:end]), Offset: i}
	}
	n.emitRune(i, rune(v))
	return end, nil
}

func (n *dictNormalizer) emitRune(i int, r rune) {
	switch {
	case r == '"':
		n.emit(i, `\"`)
	case r == '\\':
		n.emit(i, `\\`)
	case r < 0x20 || r == 0x7f || (r >= 0xD800 && r < 0xE000):
		n.emit(i, fmt.Sprintf(`\u%04x`, r))
	default:
		n.emit(i, string(r))
	}
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordPart(c byte) bool {
	return isWordStart(c) || (c >= '0' && c <= '9')
}

func isStringPrefix(w string) bool {
	switch w {
	case "r", "u", "R", "U", "b", "B", "f", "F",
		"br", "rb", "Br", "bR", "BR", "Rb", "rB", "RB",
		"fr", "rf", "Fr", "fR", "FR", "Rf", "rF", "RF":
		return true
	}
	return false
}
