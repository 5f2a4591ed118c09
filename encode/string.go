package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/litview/ir"
)

// String returns the encoding of node without its trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
