package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

func mustString(t *testing.T, node *ir.Node, d format.Dialect) string {
	t.Helper()
	s, err := String(node, EncodeDialect(d))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func sampleNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString(`it's "q"`)},
		{Key: "x-y", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromFloat(2.5),
			ir.FromBool(false),
			ir.Null(),
		})},
		{Key: "empty", Val: ir.FromSlice(nil)},
		{Key: "none", Val: ir.FromKeyVals(nil)},
	})
}

func TestEncodeDialects(t *testing.T) {
	tests := []struct {
		d    format.Dialect
		want string
	}{
		{format.JSONDialect, `{
    "name": "it's \"q\"",
    "x-y": [
        1,
        2.5,
        false,
        null
    ],
    "empty": [],
    "none": {}
}`},
		{format.ObjectLiteralDialect, `{
    name: "it's \"q\"",
    "x-y": [
        1,
        2.5,
        false,
        null
    ],
    empty: [],
    none: {}
}`},
		{format.DictLiteralDialect, `{
    'name': 'it\'s "q"',
    'x-y': [
        1,
        2.5,
        False,
        None
    ],
    'empty': [],
    'none': {}
}`},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			got := mustString(t, sampleNode(), tt.d)
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
			back, err := parse.Parse([]byte(got), parse.ParseDialect(tt.d))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(back, sampleNode()) {
				t.Errorf("round trip changed the value")
			}
		})
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromInt(3), buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeWire(t *testing.T) {
	node := sampleNode()
	tests := []struct {
		d    format.Dialect
		want string
	}{
		{format.JSONDialect, `{"name":"it's \"q\"","x-y":[1,2.5,false,null],"empty":[],"none":{}}`},
		{format.DictLiteralDialect, `{'name': 'it\'s "q"', 'x-y': [1, 2.5, False, None], 'empty': [], 'none': {}}`},
	}
	for _, tt := range tests {
		got, err := String(node, EncodeDialect(tt.d), EncodeWire(true))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %s", tt.d, got)
		}
	}
}

func TestEncodeNumbers(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromInt(-42), "-42"},
		{ir.FromFloat(100), "100"},
		{ir.FromFloat(0.1), "0.1"},
		{ir.FromFloat(1e21), "1e+21"},
		{ir.FromFloat(1e20), "100000000000000000000"},
		{ir.FromFloat(1e-7), "1e-7"},
		{ir.FromFloat(0.000001), "0.000001"},
		{ir.FromFloat(-1.5e300), "-1.5e+300"},
		{ir.FromFloat(math.Copysign(0, -1)), "0"},
	}
	for _, tt := range tests {
		if got := mustString(t, tt.node, format.JSONDialect); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
	err := Encode(ir.FromFloat(math.NaN()), &bytes.Buffer{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("NaN: got %v", err)
	}
}

func TestEncodeStrings(t *testing.T) {
	node := ir.FromString("a\\b\n\t\x01 é  ")
	for _, d := range format.AllDialects() {
		got := mustString(t, node, d)
		back, err := parse.Parse([]byte(got), parse.ParseDialect(d))
		if err != nil {
			t.Fatalf("%s: %s: %v", d, got, err)
		}
		if back.String != node.String {
			t.Errorf("%s: %q -> %q", d, node.String, back.String)
		}
	}
}

func TestExport(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	tests := []struct {
		f        format.ExportFormat
		text     string
		filename string
	}{
		{format.ParseExportFormat("json"), "{\n    \"a\": 1\n}", "data.json"},
		{format.ParseExportFormat("js"), "const data = {\n    a: 1\n};", "data.js"},
		{format.ParseExportFormat("python"), "{\n    'a': 1\n}", "data.py"},
		{format.ParseExportFormat("xml"), "{\n    \"a\": 1\n}", "data.txt"},
	}
	for _, tt := range tests {
		text, filename, err := Export(node, tt.f)
		if err != nil {
			t.Fatal(err)
		}
		if text != tt.text || filename != tt.filename {
			t.Errorf("%s: got %q in %s", tt.f, text, filename)
		}
	}
	text, _, _ := Export(node, format.ExportPython)
	compact := strings.Join(strings.Fields(text), " ")
	if compact != "{ 'a': 1 }" {
		t.Errorf("python export %q", compact)
	}
	back, err := parse.Parse([]byte(text), parse.ParseDictLiteral())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(back, node) {
		t.Error("python export did not parse back")
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map[Colorable{Type: ir.StringType, Attr: ValueColor}] = func(v string, _ ...any) string { return "<" + v + ">" }
	got, err := String(ir.FromSlice([]*ir.Node{ir.FromString("s")}), EncodeColors(c), EncodeWire(true), EncodeObjectLiteral())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<"s">`) {
		t.Errorf("got %q", got)
	}
}
