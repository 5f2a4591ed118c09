package litview

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

func TestSamplesRoundTrip(t *testing.T) {
	for _, d := range format.AllDialects() {
		doc := New(d)
		if err := doc.LoadSample(d); err != nil {
			t.Fatalf("%s sample: %v", d, err)
		}
		for _, out := range format.AllDialects() {
			text, err := doc.FormatAs(out)
			if err != nil {
				t.Fatalf("%s as %s: %v", d, out, err)
			}
			back, err := parse.Parse([]byte(text), parse.ParseDialect(out))
			if err != nil {
				t.Fatalf("%s as %s: %s", d, out, DescribeError(err, []byte(text)))
			}
			if !ir.Equal(back, doc.Root()) {
				t.Errorf("%s as %s did not round trip:\n%s", d, out, text)
			}
		}
	}
}

func TestJSONSampleIsFormatted(t *testing.T) {
	doc := New(format.JSONDialect)
	if err := doc.LoadSample(format.JSONDialect); err != nil {
		t.Fatal(err)
	}
	got, err := doc.Format()
	if err != nil {
		t.Fatal(err)
	}
	if got != Sample(format.JSONDialect) {
		t.Errorf("got\n%s", got)
	}
}

func TestSampleFallback(t *testing.T) {
	if Sample(format.Dialect(42)) != Sample(format.JSONDialect) {
		t.Error("unknown dialect did not get the json sample")
	}
}

func TestDocumentMove(t *testing.T) {
	doc := New(format.JSONDialect)
	if err := doc.LoadSample(format.JSONDialect); err != nil {
		t.Fatal(err)
	}
	if !doc.TryMove(ir.MustParsePath("settings.theme"), ir.Path{}) {
		t.Fatal("move to root failed")
	}
	n, err := doc.Resolve(ir.MustParsePath("theme"))
	if err != nil || n.String != "light" {
		t.Fatalf("theme: %v %v", n, err)
	}
	if _, err := doc.Resolve(ir.MustParsePath("settings.theme")); err == nil {
		t.Error("theme still under settings")
	}
	if err := doc.Move(ir.MustParsePath("examples[0]"), ir.MustParsePath("features")); err != nil {
		t.Fatal(err)
	}
	n, _ = doc.Resolve(ir.MustParsePath("examples"))
	if n.Len() != 2 || ir.Get(n.Values[0], "id").Number() != 2 {
		t.Errorf("examples not shifted")
	}
	n, _ = doc.Resolve(ir.MustParsePath("features"))
	if n.Len() != 5 || n.Values[4].Type != ir.ObjectType {
		t.Errorf("features: %s", ir.Summary(n))
	}

	before, _ := doc.Format()
	for _, bad := range [][2]string{{"settings", "settings"}, {"", "features"}, {"nosuch", ""}, {"contact", "version"}} {
		if doc.TryMove(ir.MustParsePath(bad[0]), ir.MustParsePath(bad[1])) {
			t.Errorf("moved %s to %s", bad[0], bad[1])
		}
	}
	if after, _ := doc.Format(); after != before {
		t.Error("rejected moves changed the document")
	}
}

func TestDocumentLoad(t *testing.T) {
	doc := New(format.DictLiteralDialect)
	if err := doc.Load([]byte(`{'x': True, 'y': None}`)); err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{{Key: "x", Val: ir.FromBool(true)}, {Key: "y", Val: ir.Null()}})
	if !ir.Equal(doc.Root(), want) {
		t.Fatal("unexpected root")
	}
	if err := doc.Load([]byte(`{'x': }`)); err == nil {
		t.Fatal("loaded bad text")
	}
	if !ir.Equal(doc.Root(), want) || string(doc.Text()) != `{'x': True, 'y': None}` {
		t.Error("failed load replaced the document")
	}
	text, filename, err := doc.Export(format.ExportJS)
	if err != nil {
		t.Fatal(err)
	}
	if filename != "data.js" || !strings.HasPrefix(text, "const data = {") {
		t.Errorf("export %s: %s", filename, text)
	}
	doc.Clear()
	if _, err := doc.Format(); !errors.Is(err, ErrNoDocument) {
		t.Errorf("format after clear: %v", err)
	}
	if doc.TryMove(ir.MustParsePath("x"), ir.Path{}) {
		t.Error("moved in an empty document")
	}
	if err := doc.SetDialect(format.Dialect(9)); !errors.Is(err, format.ErrUnsupportedDialect) {
		t.Errorf("set dialect: %v", err)
	}
	if doc.Dialect != format.DictLiteralDialect {
		t.Error("invalid dialect was set")
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		d    format.Dialect
		text string
		want string
	}{
		{format.JSONDialect, "{\n  \"a\" 1}", "JSON parse error: expected ':' after key, got number 1 (line 2, column 7)"},
		{format.JSONDialect, "[1,]", "JSON parse error: trailing comma (line 1, column 3)"},
		{format.DictLiteralDialect, "{'a': 1,\n 'b': (1, 2)}", "PYTHON parse error: tuples are not supported (line 2, column 7)"},
		{format.JSONDialect, "  \n", "input is empty, enter a document"},
	}
	for _, tt := range tests {
		doc := New(tt.d)
		err := doc.Load([]byte(tt.text))
		if err == nil {
			t.Errorf("%q parsed", tt.text)
			continue
		}
		if got := DescribeError(err, []byte(tt.text)); got != tt.want {
			t.Errorf("got %q\nwant %q", got, tt.want)
		}
	}
}
