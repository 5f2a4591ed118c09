package parse

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/token"
)

// Parse parses a single document. The dialect defaults to json.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{dialect: format.JSONDialect}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.dialect.Valid() {
		return nil, fmt.Errorf("%w: %d", format.ErrUnsupportedDialect, int(pOpts.dialect))
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmptyInput
	}
	if pOpts.dialect == format.DictLiteralDialect {
		return parseDict(d, pOpts)
	}
	p := newParser(d, pOpts, nil)
	return p.document()
}

// MaxDepth bounds the nesting of objects and arrays. Deeper input is a
// SyntaxError.
const MaxDepth = 10000

type parser struct {
	s       *token.Scanner
	n       int
	depth   int
	dialect format.Dialect
	opts    *parseOpts
	// offs maps offsets of the scanned text to the caller's input.
	offs []int
}

func newParser(d []byte, opts *parseOpts, offs []int) *parser {
	return &parser{
		s:       token.NewScanner(d, opts.TokenizeOpts()...),
		n:       len(d),
		dialect: opts.dialect,
		opts:    opts,
		offs:    offs,
	}
}

func (p *parser) literal() bool {
	return p.dialect == format.ObjectLiteralDialect
}

func (p *parser) off(i int) int {
	if p.offs == nil {
		return i
	}
	if i < len(p.offs) {
		return p.offs[i]
	}
	if len(p.offs) == 0 {
		return 0
	}
	return p.offs[len(p.offs)-1] + 1
}

func (p *parser) track(node *ir.Node, off int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.off(off)
	}
}

func (p *parser) errorf(off int, f string, args ...any) error {
	return &SyntaxError{Dialect: p.dialect, Msg: fmt.Sprintf(f, args...), Offset: p.off(off)}
}

func (p *parser) next() (*token.Token, error) {
	tok, err := p.s.Next()
	if err != nil {
		return nil, p.tokenErr(err)
	}
	return tok, nil
}

func (p *parser) peek() (*token.Token, error) {
	tok, err := p.s.Peek()
	if err != nil {
		return nil, p.tokenErr(err)
	}
	return tok, nil
}

func (p *parser) tokenErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return err
	}
	msg := te.Err.Error()
	if te.Msg != "" {
		msg += ": " + te.Msg
	}
	return &SyntaxError{Dialect: p.dialect, Msg: msg, Offset: p.off(te.Off), Err: err}
}

func (p *parser) document() (*ir.Node, error) {
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TEOF {
		return nil, p.errorf(tok.Off, "unexpected %s after value", describe(tok))
	}
	return res, nil
}

func (p *parser) value() (*ir.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	var res *ir.Node
	switch tok.Type {
	case token.TLCurl, token.TLSquare:
		if p.depth == MaxDepth {
			return nil, p.errorf(tok.Off, "nesting exceeds %d levels", MaxDepth)
		}
		p.depth++
		defer func() { p.depth-- }()
		if tok.Type == token.TLCurl {
			return p.object(tok)
		}
		return p.array(tok)
	case token.TString:
		res = ir.FromString(tok.Value)
	case token.TInteger, token.TFloat:
		res, err = p.number(tok)
	case token.TIdent:
		res, err = p.ident(tok)
	case token.TEOF:
		return nil, p.errorf(tok.Off, "unexpected end of input")
	default:
		return nil, p.errorf(tok.Off, "unexpected %s", describe(tok))
	}
	if err != nil {
		return nil, err
	}
	p.track(res, tok.Off)
	return res, nil
}

func (p *parser) ident(tok *token.Token) (*ir.Node, error) {
	v := string(tok.Bytes)
	switch v {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "null":
		return ir.Null(), nil
	}
	if !p.literal() {
		return nil, p.errorf(tok.Off, "unexpected identifier %q", v)
	}
	switch v {
	case "undefined":
		return nil, p.errorf(tok.Off, "undefined is not a data value")
	case "NaN", "Infinity":
		return nil, p.errorf(tok.Off, "%s cannot be represented", v)
	}
	return nil, p.errorf(tok.Off, "identifier %q is not a literal value; expressions are not evaluated", v)
}

func (p *parser) number(tok *token.Token) (*ir.Node, error) {
	f, i, isInt, err := numberValue(tok)
	if err != nil {
		return nil, p.errorf(tok.Off, "%s", err)
	}
	if isInt {
		return ir.FromInt(i), nil
	}
	return ir.FromFloat(f), nil
}

// numberValue converts a number token, preferring an int64 when the
// literal is an integer in range.
func numberValue(tok *token.Token) (f float64, i int64, isInt bool, err error) {
	text := token.NumberText(tok.Bytes)
	if token.IsHex(tok.Bytes) {
		neg := text[0] == '-'
		digits := text[2:]
		if neg {
			digits = text[3:]
		}
		u, perr := strconv.ParseUint(digits, 16, 64)
		if perr == nil && u <= 1<<63 {
			if neg {
				return 0, -int64(u), true, nil
			}
			if u < 1<<63 {
				return 0, int64(u), true, nil
			}
		}
		f, perr = strconv.ParseFloat("0x"+digits+"p0", 64)
		if perr != nil {
			return 0, 0, false, fmt.Errorf("number %s out of range", tok.Bytes)
		}
		if neg {
			f = -f
		}
		return f, 0, false, nil
	}
	if tok.Type == token.TInteger {
		if i, perr := strconv.ParseInt(text, 10, 64); perr == nil {
			return 0, i, true, nil
		}
	}
	f, perr := strconv.ParseFloat(text, 64)
	if perr != nil {
		return 0, 0, false, fmt.Errorf("number %s out of range", tok.Bytes)
	}
	return f, 0, false, nil
}

func (p *parser) object(open *token.Token) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{}, Values: []*ir.Node{}}
	p.track(res, open.Off)
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TRCurl {
		return res, nil
	}
	for {
		key, err := p.key(tok)
		if err != nil {
			return nil, err
		}
		colon, err := p.next()
		if err != nil {
			return nil, err
		}
		if colon.Type != token.TColon {
			return nil, p.errorf(colon.Off, "expected ':' after key, got %s", describe(colon))
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
		p.track(res.Fields[res.FieldIndex(key)], tok.Off)

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TRCurl:
			return res, nil
		case token.TComma:
		default:
			return nil, p.errorf(tok.Off, "expected ',' or '}', got %s", describe(tok))
		}
		comma := tok
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TRCurl {
			if p.literal() {
				return res, nil
			}
			return nil, p.errorf(comma.Off, "trailing comma")
		}
	}
}

func (p *parser) key(tok *token.Token) (string, error) {
	if p.dialect == format.DictLiteralDialect {
		switch tok.Type {
		case token.TString, token.TInteger, token.TFloat, token.TIdent:
			after, err := p.peek()
			if err != nil {
				return "", err
			}
			if after.Type == token.TComma || after.Type == token.TRCurl {
				return "", &SyntaxError{
					Dialect: p.dialect,
					Msg:     "sets are not supported",
					Offset:  p.off(tok.Off),
					Err:     ErrUnsupported,
				}
			}
		}
	}
	switch tok.Type {
	case token.TString:
		return tok.Value, nil
	case token.TIdent:
		if p.literal() {
			return string(tok.Bytes), nil
		}
	case token.TInteger, token.TFloat:
		if p.literal() {
			f, i, isInt, err := numberValue(tok)
			if err != nil {
				return "", p.errorf(tok.Off, "%s", err)
			}
			if isInt {
				return strconv.FormatInt(i, 10), nil
			}
			return token.FormatFloat(f), nil
		}
	case token.TEOF:
		return "", p.errorf(tok.Off, "unexpected end of input")
	}
	if p.literal() {
		return "", p.errorf(tok.Off, "expected key, got %s", describe(tok))
	}
	return "", p.errorf(tok.Off, "expected string key, got %s", describe(tok))
}

func (p *parser) array(open *token.Token) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType, Values: []*ir.Node{}}
	p.track(res, open.Off)
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.TRSquare {
		p.next()
		return res, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Append(v)
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case token.TRSquare:
			return res, nil
		case token.TComma:
		default:
			return nil, p.errorf(tok.Off, "expected ',' or ']', got %s", describe(tok))
		}
		after, err := p.peek()
		if err != nil {
			return nil, err
		}
		if after.Type == token.TRSquare {
			if !p.literal() {
				return nil, p.errorf(tok.Off, "trailing comma")
			}
			p.next()
			return res, nil
		}
	}
}

func describe(tok *token.Token) string {
	switch tok.Type {
	case token.TEOF:
		return "end of input"
	case token.TString:
		return "string " + strconv.Quote(tok.Value)
	case token.TIdent:
		return fmt.Sprintf("identifier %q", tok.Bytes)
	case token.TInteger, token.TFloat:
		return "number " + string(tok.Bytes)
	}
	return fmt.Sprintf("'%s'", tok.Bytes)
}
