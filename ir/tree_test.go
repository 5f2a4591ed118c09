package ir

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	root := obj(
		"a", arr(FromInt(10), obj("1", FromString("one"))),
		"b", FromBool(true),
	)
	tests := []struct {
		path string
		want *Node
	}{
		{"", root},
		{"a[0]", FromInt(10)},
		{"a.0", FromInt(10)},
		{"a[1].1", FromString("one")},
		{"a[1][1]", FromString("one")},
		{"b", FromBool(true)},
	}
	for _, tt := range tests {
		got, err := Resolve(root, MustParsePath(tt.path))
		if err != nil {
			t.Errorf("%q: %v", tt.path, err)
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("%q: got %s", tt.path, Summary(got))
		}
	}
	for _, bad := range []string{"c", "a[2]", "a.01", "a.x", "b.x"} {
		_, err := Resolve(root, MustParsePath(bad))
		if !errors.Is(err, ErrInvalidSegment) {
			t.Errorf("%q: got %v", bad, err)
		}
		var re *ResolveError
		if errors.As(err, &re) && re.Path.String() == "" {
			t.Errorf("%q: empty path in error", bad)
		}
	}
}

func TestEntriesAndSummary(t *testing.T) {
	root := obj("x", arr(Null(), Null(), Null()), "y", FromString("s"))
	es := Entries(root)
	if len(es) != 2 || es[0].Seg.Key != "x" || es[1].Seg.Key != "y" {
		t.Fatalf("entries %v", es)
	}
	if got := Summary(es[0].Node); got != "Array[3]" {
		t.Errorf("summary %q", got)
	}
	if got := Summary(root); got != "Object[2]" {
		t.Errorf("summary %q", got)
	}
	ae := Entries(es[0].Node)
	if len(ae) != 3 || !ae[2].Seg.IsIndex || ae[2].Seg.Index != 2 {
		t.Errorf("array entries %v", ae)
	}
	if Entries(es[1].Node) != nil || es[1].Node.Len() != 0 {
		t.Error("scalar has entries")
	}
}
