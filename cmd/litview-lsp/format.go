package main

import (
	"bytes"
	"context"

	"github.com/signadot/litview/debug"
	"github.com/signadot/litview/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns a single edit replacing the whole document with its
// formatted text, or no edits when it is already formatted.
func formatEdits(doc *document) []protocol.TextEdit {
	var buf bytes.Buffer
	if err := encode.Encode(doc.root, &buf, encode.EncodeDialect(doc.dialect)); err != nil {
		if debug.LSP() {
			debug.Logf("format %s: %v", doc.uri, err)
		}
		return nil
	}
	formatted := buf.String()

	if formatted == string(doc.content) {
		return []protocol.TextEdit{}
	}

	lines := bytes.Count(doc.content, []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
