package token

import "testing"

func TestLocate(t *testing.T) {
	text := []byte("{\n \"a\": 1,\n}")
	tests := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{-4, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{3, 2, 2},
		{11, 3, 1},
		{12, 3, 2},
		{99, 3, 2},
	}
	pd := NewPosDoc(text)
	for _, tt := range tests {
		line, col := Locate(text, tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("Locate(%d) = %d:%d, want %d:%d", tt.off, line, col, tt.line, tt.col)
		}
		pl, pc := pd.LineCol(tt.off)
		if pl != line || pc != col {
			t.Errorf("PosDoc.LineCol(%d) = %d:%d, Locate gives %d:%d", tt.off, pl, pc, line, col)
		}
	}
}

func TestPosDocOffset(t *testing.T) {
	text := []byte("ab\ncd\n\nef")
	pd := NewPosDoc(text)
	for off := 0; off <= len(text); off++ {
		line, col := pd.LineCol(off)
		if got := pd.Offset(line, col); got != off {
			t.Errorf("Offset(LineCol(%d)) = %d", off, got)
		}
	}
	if got := pd.Offset(1, 40); got != 2 {
		t.Errorf("past end of line: got %d", got)
	}
	if got := pd.Offset(9, 1); got != len(text) {
		t.Errorf("past last line: got %d", got)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		q    byte
		want string
	}{
		{`a"b`, '"', `"a\"b"`},
		{`a'b`, '"', `"a'b"`},
		{`a'b`, '\'', `'a\'b'`},
		{"tab\there\n", '"', `"tab\there\n"`},
		{"\x01", '"', `"\u0001"`},
		{`back\slash`, '\'', `'back\\slash'`},
		{"你好", '"', `"你好"`},
		{"\u2028", '"', `"\u2028"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in, tt.q); got != tt.want {
			t.Errorf("Quote(%q, %c) = %s, want %s", tt.in, tt.q, got, tt.want)
		}
	}
}

func TestKeyText(t *testing.T) {
	for k, want := range map[string]string{
		"name": "name",
		"$x_1": "$x_1",
		"1a":   `"1a"`,
		"a-b":  `"a-b"`,
		"":     `""`,
		"中文":   `"中文"`,
	} {
		if got := KeyText(k, '"'); got != want {
			t.Errorf("KeyText(%q) = %s, want %s", k, got, want)
		}
	}
}
