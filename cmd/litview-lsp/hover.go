package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/ir"

	"go.lsp.dev/protocol"
)

const maxHoverValue = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	off := doc.lines.offset(params.Position)
	node := nodeAt(doc.root, doc.positions, off)
	hoverText := buildHoverText(doc, node)
	if hoverText == "" {
		return nil, nil
	}

	start := doc.lines.position(doc.positions[node])
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: &protocol.Range{Start: start, End: start},
	}, nil
}

// nodeAt descends from root to the deepest node whose entry starts at or
// before off. For object members, the entry starts at the key.
func nodeAt(root *ir.Node, positions map[*ir.Node]int, off int) *ir.Node {
	cur := root
	for !cur.Type.IsLeaf() {
		var next *ir.Node
		best := -1
		for i, v := range cur.Values {
			start := positions[v]
			if cur.Type == ir.ObjectType {
				start = positions[cur.Fields[i]]
			}
			if start <= off && start > best {
				next, best = v, start
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
	return cur
}

func buildHoverText(doc *document, node *ir.Node) string {
	if node == nil {
		return ""
	}

	path := ir.PathOf(node).String()
	if path == "" {
		path = "$"
	}
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", path),
		fmt.Sprintf("**Type:** %s", ir.Summary(node)),
	}
	if node.Type.IsLeaf() {
		v, err := encode.String(node, encode.EncodeDialect(doc.dialect), encode.EncodeWire(true))
		if err == nil {
			if len(v) > maxHoverValue {
				v = v[:maxHoverValue] + "..."
			}
			parts = append(parts, fmt.Sprintf("**Value:** `%s`", v))
		}
	}

	return strings.Join(parts, "\n\n")
}
