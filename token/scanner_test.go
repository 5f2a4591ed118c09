package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokCheck struct {
	typ   TokenType
	off   int
	bytes string
	value string
}

func checksOf(toks []Token) []tokCheck {
	res := make([]tokCheck, 0, len(toks))
	for i := range toks {
		tk := &toks[i]
		res = append(res, tokCheck{typ: tk.Type, off: tk.Off, bytes: string(tk.Bytes), value: tk.Value})
	}
	return res
}

func TestTokenizeJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tokCheck
	}{
		{
			name:  "object",
			input: `{"a": 1}`,
			want: []tokCheck{
				{typ: TLCurl, off: 0, bytes: "{"},
				{typ: TString, off: 1, bytes: `"a"`, value: "a"},
				{typ: TColon, off: 4, bytes: ":"},
				{typ: TInteger, off: 6, bytes: "1"},
				{typ: TRCurl, off: 7, bytes: "}"},
				{typ: TEOF, off: 8},
			},
		},
		{
			name:  "array with floats",
			input: "[-0.5,\n 1e3]",
			want: []tokCheck{
				{typ: TLSquare, off: 0, bytes: "["},
				{typ: TFloat, off: 1, bytes: "-0.5"},
				{typ: TComma, off: 5, bytes: ","},
				{typ: TFloat, off: 8, bytes: "1e3"},
				{typ: TRSquare, off: 11, bytes: "]"},
				{typ: TEOF, off: 12},
			},
		},
		{
			name:  "escapes",
			input: `"é\n\"\/😀"`,
			want: []tokCheck{
				{typ: TString, off: 0, bytes: `"é\n\"\/😀"`, value: "é\n\"/😀"},
				{typ: TEOF, off: 14},
			},
		},
		{
			name:  "keywords are identifiers",
			input: "true null",
			want: []tokCheck{
				{typ: TIdent, off: 0, bytes: "true"},
				{typ: TIdent, off: 5, bytes: "null"},
				{typ: TEOF, off: 9},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.input), TokenJSON())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, checksOf(toks), cmp.AllowUnexported(tokCheck{})); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeLiteral(t *testing.T) {
	input := "{ // note\n a: 'it\\'s', /* x */ $b: +.5, c: 0x1F, d: 1_000, e: 5., }"
	toks, err := Tokenize(nil, []byte(input), TokenLiteral())
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for i := range toks {
		got = append(got, toks[i].Type.String()+" "+toks[i].String())
	}
	want := []string{
		"TLCurl {",
		"TIdent a", "TColon :", "TString it's", "TComma ,",
		"TIdent $b", "TColon :", "TFloat +.5", "TComma ,",
		"TIdent c", "TColon :", "TInteger 0x1F", "TComma ,",
		"TIdent d", "TColon :", "TInteger 1_000", "TComma ,",
		"TIdent e", "TColon :", "TFloat 5.", "TComma ,",
		"TRCurl }",
		"TEOF ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opt   TokenOpt
		err   error
		off   int
	}{
		{"single quote in json", `{'a': 1}`, TokenJSON(), ErrSingleQuote, 1},
		{"comment in json", "[1, // x\n2]", TokenJSON(), ErrComment, 4},
		{"leading zero", `[01]`, TokenJSON(), ErrNumberLeadingZero, 1},
		{"bare dot", `[1.]`, TokenJSON(), ErrNumber, 2},
		{"missing exponent", `1e`, TokenJSON(), ErrNumber, 2},
		{"unterminated", `{"a": "b`, TokenJSON(), ErrUnterminated, 6},
		{"raw newline", "\"a\nb\"", TokenJSON(), ErrUnicodeControl, 2},
		{"bad escape", `"\x41"`, TokenJSON(), ErrBadEscape, 1},
		{"bad unicode", `"\u12"`, TokenJSON(), ErrBadUnicode, 1},
		{"template", "{a: `x`}", TokenLiteral(), ErrTemplate, 4},
		{"unterminated block comment", "{ /* a: 1 }", TokenLiteral(), ErrUnterminated, 2},
		{"octal escape", `'\12'`, TokenLiteral(), ErrBadEscape, 1},
		{"stray char", `{a: @}`, TokenLiteral(), ErrUnexpected, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.input), tt.opt)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("%v is not a *TokenizeErr", err)
			}
			if te.Off != tt.off {
				t.Errorf("offset %d, want %d", te.Off, tt.off)
			}
		})
	}
}

func TestPeek(t *testing.T) {
	s := NewScanner([]byte("[1]"))
	p, err := s.Peek()
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if p != n || n.Type != TLSquare {
		t.Errorf("peek %+v next %+v", p, n)
	}
	n, _ = s.Next()
	if n.Type != TInteger {
		t.Errorf("got %+v", n)
	}
}

func TestNumberText(t *testing.T) {
	if got := NumberText([]byte("+1_000.5")); got != "1000.5" {
		t.Errorf("got %q", got)
	}
	if !IsHex([]byte("-0xff")) || IsHex([]byte("0")) {
		t.Error("IsHex")
	}
}
