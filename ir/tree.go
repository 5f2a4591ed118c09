package ir

import (
	"fmt"
	"strconv"
)

// Entry is one child of a composite node together with the segment that
// reaches it.
type Entry struct {
	Seg  Segment
	Node *Node
}

// Entries lists the children of node in array or key order. Scalars have
// no entries.
func Entries(node *Node) []Entry {
	switch node.Type {
	case ObjectType:
		res := make([]Entry, len(node.Values))
		for i, v := range node.Values {
			res[i] = Entry{Seg: KeySeg(node.Fields[i].String), Node: v}
		}
		return res
	case ArrayType:
		res := make([]Entry, len(node.Values))
		for i, v := range node.Values {
			res[i] = Entry{Seg: IndexSeg(i), Node: v}
		}
		return res
	}
	return nil
}

// Summary labels a composite with its type and size, as in "Array[3]" or
// "Object[2]". Scalars are labelled with their type name.
func Summary(node *Node) string {
	if node.Type.IsLeaf() {
		return node.Type.String()
	}
	return fmt.Sprintf("%s[%d]", node.Type, node.Len())
}

// Resolve descends from root along p.
func Resolve(root *Node, p Path) (*Node, error) {
	cur := root
	for i, seg := range p {
		j := childIndex(cur, seg)
		if j < 0 {
			return nil, &ResolveError{Path: p, At: i, Err: ErrInvalidSegment}
		}
		cur = cur.Values[j]
	}
	return cur, nil
}

// childIndex returns the position in y.Values addressed by seg, or -1.
func childIndex(y *Node, seg Segment) int {
	switch y.Type {
	case ObjectType:
		return y.FieldIndex(seg.Text())
	case ArrayType:
		i := seg.Index
		if !seg.IsIndex {
			n, ok := canonicalIndex(seg.Key)
			if !ok {
				return -1
			}
			i = n
		}
		if i < 0 || i >= len(y.Values) {
			return -1
		}
		return i
	}
	return -1
}

func canonicalIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 0 || strconv.Itoa(n) != k {
		return 0, false
	}
	return n, true
}
