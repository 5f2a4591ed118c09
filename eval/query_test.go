package eval

import (
	"strings"
	"testing"

	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

const queryDoc = `{"name": "lv", "tags": ["a", "b"], "meta": {"n": 1, "r": 0.5}}`

func TestQuery(t *testing.T) {
	root, err := parse.Parse([]byte(queryDoc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		expr string
		want *ir.Node
	}{
		{`doc.name`, ir.FromString("lv")},
		{`len(doc.tags)`, ir.FromInt(2)},
		{`doc.meta.n + 1`, ir.FromInt(2)},
		{`doc.meta.r * 2`, ir.FromFloat(1)},
		{`getpath("tags[1]")`, ir.FromString("b")},
		{`haspath("meta.n")`, ir.FromBool(true)},
		{`haspath("meta.x")`, ir.FromBool(false)},
		{`summary("tags")`, ir.FromString("Array[2]")},
		{`map(doc.tags, # + "!")`, ir.FromSlice([]*ir.Node{ir.FromString("a!"), ir.FromString("b!")})},
		{`doc.meta`, ir.FromMap(map[string]*ir.Node{"n": ir.FromInt(1), "r": ir.FromFloat(0.5)})},
		{`nil`, ir.Null()},
		{`doc.meta.n == 1 && "a" in doc.tags`, ir.FromBool(true)},
	}
	for _, tt := range tests {
		got, err := Query(root, tt.expr)
		if err != nil {
			t.Errorf("%s: %v", tt.expr, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("%s: got %s", tt.expr, jsonText(got))
		}
	}
}

func jsonText(n *ir.Node) string {
	d, err := MarshalJSON(n)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func TestQueryErrors(t *testing.T) {
	root := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	for _, e := range []string{`nosuch`, `getpath("b")`, `doc.a +`} {
		if _, err := Query(root, e); err == nil || !strings.HasPrefix(err.Error(), "query: ") {
			t.Errorf("%s: got %v", e, err)
		}
	}
}

func TestAnyRoundTrip(t *testing.T) {
	root, err := parse.Parse([]byte(`{"b": [1, 2.5, null, true], "a": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromAny(ToAny(root))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(back.Keys(), ","); got != "a,b" {
		t.Errorf("keys %s", got)
	}
	if !ir.Equal(ir.Get(back, "b"), ir.Get(root, "b")) {
		t.Errorf("got %s", jsonText(back))
	}
	d, err := MarshalJSON(root)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"a":"x","b":[1,2.5,null,true]}` {
		t.Errorf("got %s", d)
	}
}
