package ir

import (
	"slices"
	"strconv"
)

// Move relocates the subtree at src into the container at dst, appending
// to an array or adding to an object under the source's key. A key that is
// already taken in the destination gets the first free "_N" suffix.
//
// Every check runs before the tree is touched: on error root is unchanged,
// and the error is a *MoveError naming the reason.
func Move(root *Node, src, dst Path) error {
	fail := func(reason, cause error) error {
		return &MoveError{Src: src, Dst: dst, Reason: reason, Cause: cause}
	}
	if len(src) == 0 {
		return fail(ErrSourceNotFound, nil)
	}
	if dst.HasPrefix(src) {
		return fail(ErrSelfOrDescendant, nil)
	}
	srcParent, err := Resolve(root, src.Parent())
	if err != nil {
		return fail(ErrSourceNotFound, err)
	}
	si := childIndex(srcParent, src.Last())
	if si < 0 {
		return fail(ErrSourceNotFound, &ResolveError{Path: src, At: len(src) - 1, Err: ErrInvalidSegment})
	}
	node := srcParent.Values[si]
	key := strconv.Itoa(si)
	if srcParent.Type == ObjectType {
		key = srcParent.Fields[si].String
	}
	dest, err := Resolve(root, dst)
	if err != nil {
		return fail(ErrDestinationNotFound, err)
	}
	if dest.Type.IsLeaf() {
		return fail(ErrDestinationNotContainer, nil)
	}

	if dest.Type == ArrayType {
		dest.Append(node)
	} else {
		dest.Set(FreeKey(dest, key), node)
	}
	srcParent.removeAt(si)
	return nil
}

// FreeKey returns key if the object y does not use it, and otherwise the
// first of key_1, key_2, ... that it does not use.
func FreeKey(y *Node, key string) string {
	if y.FieldIndex(key) < 0 {
		return key
	}
	for n := 1; ; n++ {
		k := key + "_" + strconv.Itoa(n)
		if y.FieldIndex(k) < 0 {
			return k
		}
	}
}

func (y *Node) removeAt(i int) {
	y.Values = slices.Delete(y.Values, i, i+1)
	if y.Type == ObjectType {
		y.Fields = slices.Delete(y.Fields, i, i+1)
	}
	y.reindex(i)
}
