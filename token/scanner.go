package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type tokenOpts struct {
	literal bool
}

type TokenOpt func(*tokenOpts)

// TokenJSON scans the strict data-interchange grammar.
func TokenJSON() TokenOpt {
	return func(o *tokenOpts) { o.literal = false }
}

// TokenLiteral scans object-literal source: single-quoted strings, comments,
// identifiers, and the wider numeric syntax.
func TokenLiteral() TokenOpt {
	return func(o *tokenOpts) { o.literal = true }
}

// Scanner produces tokens from an in-memory document.
type Scanner struct {
	d      []byte
	i      int
	opt    tokenOpts
	peeked *Token
}

func NewScanner(d []byte, opts ...TokenOpt) *Scanner {
	s := &Scanner{d: d}
	for _, o := range opts {
		o(&s.opt)
	}
	if s.opt.literal && len(d) >= 3 && d[0] == 0xEF && d[1] == 0xBB && d[2] == 0xBF {
		s.i = 3
	}
	return s
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (*Token, error) {
	if s.peeked != nil {
		return s.peeked, nil
	}
	tok, err := s.scan()
	if err != nil {
		return nil, err
	}
	s.peeked = tok
	return tok, nil
}

func (s *Scanner) Next() (*Token, error) {
	if s.peeked != nil {
		tok := s.peeked
		s.peeked = nil
		return tok, nil
	}
	return s.scan()
}

// Tokenize scans all of src, up to and including the TEOF token.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	s := NewScanner(src, opts...)
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
		if tok.Type == TEOF {
			return dst, nil
		}
	}
}

func (s *Scanner) scan() (*Token, error) {
	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	d := s.d
	if s.i >= len(d) {
		return &Token{Type: TEOF, Off: len(d)}, nil
	}
	start := s.i
	c := d[start]
	switch c {
	case '{':
		return s.emit(TLCurl, start, start+1), nil
	case '}':
		return s.emit(TRCurl, start, start+1), nil
	case '[':
		return s.emit(TLSquare, start, start+1), nil
	case ']':
		return s.emit(TRSquare, start, start+1), nil
	case ':':
		return s.emit(TColon, start, start+1), nil
	case ',':
		return s.emit(TComma, start, start+1), nil
	case '"':
		return s.quoted('"')
	case '\'':
		if !s.opt.literal {
			return nil, NewTokenizeErr(ErrSingleQuote, start)
		}
		return s.quoted('\'')
	case '`':
		if s.opt.literal {
			return nil, NewTokenizeErr(ErrTemplate, start)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.number()
	case '+':
		if s.opt.literal {
			return s.number()
		}
	case '.':
		if s.opt.literal && start+1 < len(d) && asciiDigit(d[start+1]) {
			return s.number()
		}
	}
	if isIdentStart(c) {
		i := start + 1
		for i < len(d) && isIdentPart(d[i]) {
			i++
		}
		return s.emit(TIdent, start, i), nil
	}
	r, sz := utf8.DecodeRune(d[start:])
	if r == utf8.RuneError && sz <= 1 {
		return nil, NewTokenizeErr(ErrBadUTF8, start)
	}
	return nil, UnexpectedErr(string(r), start)
}

func (s *Scanner) emit(t TokenType, start, end int) *Token {
	s.i = end
	return &Token{Type: t, Off: start, Bytes: s.d[start:end]}
}

func (s *Scanner) skipSpace() error {
	d := s.d
	for s.i < len(d) {
		switch d[s.i] {
		case ' ', '\t', '\n', '\r':
			s.i++
			continue
		case '\v', '\f':
			if s.opt.literal {
				s.i++
				continue
			}
		case '/':
			if !s.opt.literal {
				return NewTokenizeErr(ErrComment, s.i)
			}
			if err := s.skipComment(); err != nil {
				return err
			}
			continue
		}
		return nil
	}
	return nil
}

func (s *Scanner) skipComment() error {
	d := s.d
	start := s.i
	if start+1 >= len(d) {
		return UnexpectedErr("/", start)
	}
	switch d[start+1] {
	case '/':
		i := start + 2
		for i < len(d) && d[i] != '\n' {
			i++
		}
		s.i = i
		return nil
	case '*':
		end := strings.Index(string(d[start+2:]), "*/")
		if end < 0 {
			return &TokenizeErr{Err: ErrUnterminated, Off: start, Msg: "block comment"}
		}
		s.i = start + 2 + end + 2
		return nil
	}
	return UnexpectedErr("/", start)
}

func (s *Scanner) quoted(q byte) (*Token, error) {
	d := s.d
	start := s.i
	b := &strings.Builder{}
	i := start + 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == q:
			i++
			tok := s.emit(TString, start, i)
			tok.Value = b.String()
			return tok, nil
		case c == '\\':
			n, err := s.escape(b, i)
			if err != nil {
				return nil, err
			}
			i += n
		case c == '\n' || c == '\r':
			if s.opt.literal {
				return nil, &TokenizeErr{Err: ErrUnterminated, Off: start, Msg: "string"}
			}
			return nil, NewTokenizeErr(ErrUnicodeControl, i)
		case c < 0x20:
			if s.opt.literal {
				b.WriteByte(c)
				i++
				continue
			}
			return nil, NewTokenizeErr(ErrUnicodeControl, i)
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return nil, NewTokenizeErr(ErrBadUTF8, i)
			}
			b.WriteRune(r)
			i += sz
		}
	}
	return nil, &TokenizeErr{Err: ErrUnterminated, Off: start, Msg: "string"}
}

// escape decodes the escape sequence starting with the backslash at i and
// returns the number of bytes consumed.
func (s *Scanner) escape(b *strings.Builder, i int) (int, error) {
	d := s.d
	if i+1 >= len(d) {
		return 0, &TokenizeErr{Err: ErrUnterminated, Off: i, Msg: "escape"}
	}
	c := d[i+1]
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
		return 2, nil
	case 'b':
		b.WriteByte('\b')
		return 2, nil
	case 'f':
		b.WriteByte('\f')
		return 2, nil
	case 'n':
		b.WriteByte('\n')
		return 2, nil
	case 'r':
		b.WriteByte('\r')
		return 2, nil
	case 't':
		b.WriteByte('\t')
		return 2, nil
	case 'u':
		return s.unicodeEscape(b, i)
	}
	if !s.opt.literal {
		return 0, &TokenizeErr{Err: ErrBadEscape, Off: i, Msg: fmt.Sprintf("\\%c", c)}
	}
	switch c {
	case '\'':
		b.WriteByte('\'')
		return 2, nil
	case 'v':
		b.WriteByte('\v')
		return 2, nil
	case '0':
		if i+2 < len(d) && asciiDigit(d[i+2]) {
			return 0, &TokenizeErr{Err: ErrBadEscape, Off: i, Msg: "octal escapes are not supported"}
		}
		b.WriteByte(0)
		return 2, nil
	case 'x':
		if i+4 > len(d) || !allHex(d[i+2:i+4]) {
			return 0, &TokenizeErr{Err: ErrBadEscape, Off: i, Msg: "\\x needs two hex digits"}
		}
		b.WriteRune(rune(hexVal(d[i+2 : i+4])))
		return 4, nil
	case '\n':
		return 2, nil
	case '\r':
		if i+2 < len(d) && d[i+2] == '\n' {
			return 3, nil
		}
		return 2, nil
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return 0, &TokenizeErr{Err: ErrBadEscape, Off: i, Msg: "octal escapes are not supported"}
	}
	r, sz := utf8.DecodeRune(d[i+1:])
	if r == utf8.RuneError && sz == 1 {
		return 0, NewTokenizeErr(ErrBadUTF8, i+1)
	}
	b.WriteRune(r)
	return 1 + sz, nil
}

func (s *Scanner) unicodeEscape(b *strings.Builder, i int) (int, error) {
	d := s.d
	if s.opt.literal && i+2 < len(d) && d[i+2] == '{' {
		end := i + 3
		for end < len(d) && d[end] != '}' {
			end++
		}
		hex := d[i+3 : min(end, len(d))]
		if end >= len(d) || len(hex) == 0 || len(hex) > 6 || !allHex(hex) || hexVal(hex) > utf8.MaxRune {
			return 0, NewTokenizeErr(ErrBadUnicode, i)
		}
		b.WriteRune(rune(hexVal(hex)))
		return end + 1 - i, nil
	}
	if i+6 > len(d) || !allHex(d[i+2:i+6]) {
		return 0, NewTokenizeErr(ErrBadUnicode, i)
	}
	r := rune(hexVal(d[i+2 : i+6]))
	if r >= 0xD800 && r < 0xDC00 {
		j := i + 6
		if j+6 <= len(d) && d[j] == '\\' && d[j+1] == 'u' && allHex(d[j+2:j+6]) {
			lo := rune(hexVal(d[j+2 : j+6]))
			if lo >= 0xDC00 && lo < 0xE000 {
				b.WriteRune((r-0xD800)<<10 | (lo - 0xDC00) + 0x10000)
				return 12, nil
			}
		}
		b.WriteRune(utf8.RuneError)
		return 6, nil
	}
	if r >= 0xDC00 && r < 0xE000 {
		r = utf8.RuneError
	}
	b.WriteRune(r)
	return 6, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || asciiDigit(c)
}

// IsIdentifier reports whether v can be written as a bare object-literal key.
func IsIdentifier(v string) bool {
	if v == "" || !isIdentStart(v[0]) {
		return false
	}
	for i := 1; i < len(v); i++ {
		if !isIdentPart(v[i]) {
			return false
		}
	}
	return true
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func hexVal(d []byte) int {
	v := 0
	for _, c := range d {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		}
	}
	return v
}
