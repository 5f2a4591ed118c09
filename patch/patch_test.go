package patch

import (
	"errors"
	"testing"

	"github.com/signadot/litview/eval"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func sameJSON(t *testing.T, got, want *ir.Node) {
	t.Helper()
	g, err := eval.MarshalJSON(got)
	if err != nil {
		t.Fatal(err)
	}
	w, err := eval.MarshalJSON(want)
	if err != nil {
		t.Fatal(err)
	}
	if string(g) != string(w) {
		t.Errorf("got %s want %s", g, w)
	}
}

func TestApply(t *testing.T) {
	root := mustParse(t, `{"b": 1, "a": [1, 2]}`)
	res, err := Apply(root, []byte(`[
		{"op": "add", "path": "/c", "value": {"x": null}},
		{"op": "replace", "path": "/a/1", "value": "two"},
		{"op": "remove", "path": "/b"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	sameJSON(t, res, mustParse(t, `{"a": [1, "two"], "c": {"x": null}}`))
	if ir.Get(root, "b") == nil {
		t.Error("root was modified")
	}
}

func TestApplyErrors(t *testing.T) {
	root := mustParse(t, `{"a": 1}`)
	if _, err := Apply(root, []byte(`{"op": "add"}`)); err == nil {
		t.Error("decoded a non-array patch")
	}
	if _, err := Apply(root, []byte(`[{"op": "test", "path": "/a", "value": 2}]`)); err == nil {
		t.Error("failed test op applied")
	}
}

func TestPointer(t *testing.T) {
	p := ir.Path{ir.KeySeg("a/b"), ir.IndexSeg(2), ir.KeySeg("~x")}
	if got := Pointer(p); got != "/a~1b/2/~0x" {
		t.Errorf("got %s", got)
	}
	if got := Pointer(nil); got != "" {
		t.Errorf("root pointer %q", got)
	}
}

func TestMoveOp(t *testing.T) {
	tests := []struct {
		src, dst string
		want     string
	}{
		{"list[0]", "list", `[{"op":"move","from":"/list/0","path":"/list/2"}]`},
		{"obj.k", "", `[{"op":"move","from":"/obj/k","path":"/k_1"}]`},
		{"k", "list", `[{"op":"move","from":"/k","path":"/list/3"}]`},
	}
	for _, tt := range tests {
		doc := `{"k": 0, "obj": {"k": 1}, "list": ["p", "q", "r"]}`
		root := mustParse(t, doc)
		src, dst := ir.MustParsePath(tt.src), ir.MustParsePath(tt.dst)
		d, err := MoveOp(root, src, dst)
		if err != nil {
			t.Fatalf("%s -> %s: %v", tt.src, tt.dst, err)
		}
		if string(d) != tt.want {
			t.Errorf("%s -> %s: got %s", tt.src, tt.dst, d)
		}
		patched, err := Apply(root, d)
		if err != nil {
			t.Fatal(err)
		}
		if err := ir.Move(root, src, dst); err != nil {
			t.Fatal(err)
		}
		sameJSON(t, patched, root)
	}
}

func TestMoveOpRejected(t *testing.T) {
	root := mustParse(t, `{"a": {"b": 1}}`)
	_, err := MoveOp(root, ir.MustParsePath("a"), ir.MustParsePath("a.b"))
	if !errors.Is(err, ir.ErrSelfOrDescendant) {
		t.Errorf("got %v", err)
	}
	if ir.Get(root, "a") == nil {
		t.Error("root was modified")
	}
}

func TestMoveOpMissingSource(t *testing.T) {
	root := mustParse(t, `{"a": {"b": 1}, "c": []}`)
	_, err := MoveOp(root, ir.MustParsePath("a.x"), ir.MustParsePath("c"))
	var me *ir.MoveError
	if !errors.As(err, &me) || !errors.Is(err, ir.ErrSourceNotFound) || !errors.Is(err, ir.ErrInvalidSegment) {
		t.Errorf("got %v", err)
	}
}
