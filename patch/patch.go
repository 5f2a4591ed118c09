package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/litview/eval"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Apply applies an RFC 6902 patch to root and returns the patched
// document. root is not modified. Object keys of the result are sorted.
func Apply(root *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := eval.MarshalJSON(root)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return parse.Parse(out)
}

var pointerEscape = strings.NewReplacer("~", "~0", "/", "~1")

// Pointer renders p as an RFC 6901 JSON pointer.
func Pointer(p ir.Path) string {
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(pointerEscape.Replace(seg.Text()))
	}
	return b.String()
}

type op struct {
	Op   string `json:"op"`
	From string `json:"from"`
	Path string `json:"path"`
}

// MoveOp renders the relocation ir.Move(root, src, dst) would perform as
// a single RFC 6902 move operation. The target pointer names the slot the
// node ends up in, including any renamed key. Moves that ir.Move rejects
// return its error.
func MoveOp(root *ir.Node, src, dst ir.Path) ([]byte, error) {
	c := root.Clone()
	node, err := ir.Resolve(c, src)
	if err != nil {
		return nil, &ir.MoveError{Src: src, Dst: dst, Reason: ir.ErrSourceNotFound, Cause: err}
	}
	if err := ir.Move(c, src, dst); err != nil {
		return nil, err
	}
	return json.Marshal([]op{{
		Op:   "move",
		From: Pointer(src),
		Path: Pointer(ir.PathOf(node)),
	}})
}
