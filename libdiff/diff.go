package libdiff

import (
	"fmt"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// Change is one difference between two documents. From is nil for an
// insert and To is nil for a delete.
type Change struct {
	Path     ir.Path
	Kind     Kind
	From, To *ir.Node
}

func (c Change) String() string {
	p := c.Path.String()
	if p == "" {
		p = "$"
	}
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+ %s: %s", p, wire(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", p, wire(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", p, wire(c.From), wire(c.To))
	}
}

func wire(n *ir.Node) string {
	s, err := encode.String(n, encode.EncodeJSON(), encode.EncodeWire(true))
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}

// Diff lists the changes that turn from into to, in document order.
//
// Object keys are aligned as a sequence so that an inserted or removed key
// does not disturb its neighbours; values under keys present on both sides
// are compared recursively. Array elements are compared by position. Any
// other difference, including a change of type, is a single Replace.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, nil, from, to)
}

func diff(res []Change, p ir.Path, from, to *ir.Node) []Change {
	// equal subtrees are skipped without descending
	if from.Hash() == to.Hash() && ir.Equal(from, to) {
		return res
	}
	switch {
	case from.Type != to.Type:
	case from.Type == ir.ObjectType:
		return diffObject(res, p, from, to)
	case from.Type == ir.ArrayType:
		return diffArray(res, p, from, to)
	}
	return append(res, Change{Path: p, Kind: Replace, From: from, To: to})
}

func diffObject(res []Change, p ir.Path, from, to *ir.Node) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				res = append(res, Change{Path: p.Append(ir.KeySeg(runeMap[r])), Kind: Delete, From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				res = diff(res, p.Append(ir.KeySeg(runeMap[r])), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				res = append(res, Change{Path: p.Append(ir.KeySeg(runeMap[r])), Kind: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
	return res
}

func diffArray(res []Change, p ir.Path, from, to *ir.Node) []Change {
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		res = diff(res, p.Append(ir.IndexSeg(i)), from.Values[i], to.Values[i])
	}
	for i := n; i < len(from.Values); i++ {
		res = append(res, Change{Path: p.Append(ir.IndexSeg(i)), Kind: Delete, From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		res = append(res, Change{Path: p.Append(ir.IndexSeg(i)), Kind: Insert, To: to.Values[i]})
	}
	return res
}

// mapFieldsTo assigns each distinct key a rune so that key sequences can
// be diffed as text. Runes start past the surrogate range.
func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(0xe000 + len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
