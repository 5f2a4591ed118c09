package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/litview/format"

	"go.lsp.dev/protocol"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		uri  string
		id   protocol.LanguageIdentifier
		want format.Dialect
	}{
		{"file:///a/x.txt", "python", format.DictLiteralDialect},
		{"file:///a/x.js", "javascript", format.ObjectLiteralDialect},
		{"file:///a/x.py", "plaintext", format.DictLiteralDialect},
		{"file:///a/x.json", "", format.JSONDialect},
		{"file:///a/x", "", format.JSONDialect},
	}
	for _, tt := range tests {
		if got := dialectFor(tt.uri, tt.id); got != tt.want {
			t.Errorf("dialectFor(%q, %q) = %s, want %s", tt.uri, tt.id, got, tt.want)
		}
	}
}

func TestPositions(t *testing.T) {
	text := []byte("ab\n\U0001F600x\n")
	li := newLineIndex(text)
	got := li.position(7)
	if got != (protocol.Position{Line: 1, Character: 2}) {
		t.Errorf("position = %+v", got)
	}
	if off := li.offset(got); off != 7 {
		t.Errorf("offset = %d", off)
	}
	if off := li.offset(protocol.Position{Line: 0, Character: 40}); off != 2 {
		t.Errorf("past line end = %d", off)
	}
	if off := li.offset(protocol.Position{Line: 2}); off != len(text) {
		t.Errorf("last line = %d", off)
	}
	if off := li.offset(protocol.Position{Line: 9}); off != len(text) {
		t.Errorf("past last line = %d", off)
	}
	if r := li.errorRange(2); r.Start != r.End {
		t.Errorf("range at a newline %+v", r)
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		dialect format.Dialect
		text    string
		msg     string
		rng     protocol.Range
	}{
		{
			name:    "json",
			dialect: format.JSONDialect,
			text:    "{\n  \"a\" 1}",
			msg:     "expected ':' after key, got number 1",
			rng: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 6},
				End:   protocol.Position{Line: 1, Character: 7},
			},
		},
		{
			name:    "python",
			dialect: format.DictLiteralDialect,
			text:    "{'a': 1,\n 'b': (1, 2)}",
			msg:     "tuples are not supported",
			rng: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 6},
				End:   protocol.Position{Line: 1, Character: 7},
			},
		},
	}
	ds := newServer().docs
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ds.put("file:///x", tt.dialect, tt.text, 1)
			diags := validateDocument(doc)
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics", len(diags))
			}
			if diags[0].Message != tt.msg {
				t.Errorf("message %q", diags[0].Message)
			}
			if diff := cmp.Diff(tt.rng, diags[0].Range); diff != "" {
				t.Errorf("range (-want +got):\n%s", diff)
			}
		})
	}
	for _, text := range []string{"", " \n", `{"a": 1}`} {
		doc := ds.put("file:///x", format.JSONDialect, text, 1)
		if diags := validateDocument(doc); len(diags) != 0 {
			t.Errorf("%q: unexpected %v", text, diags)
		}
	}
}

func TestServerDocuments(t *testing.T) {
	ctx := context.Background()
	s := newServer()
	uri := protocol.DocumentURI("file:///w/data.py")
	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "{'a': None}"},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(string(uri))
	if doc == nil || doc.dialect != format.DictLiteralDialect || doc.root == nil {
		t.Fatalf("opened %+v", doc)
	}
	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument:   protocol.VersionedTextDocumentIdentifier{Version: 2},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "{'a': (}"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.docs.get(string(uri)).version != 1 {
		t.Error("changed a document that was not named")
	}
	change := &protocol.DidChangeTextDocumentParams{
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: "{'a': (}"}},
	}
	change.TextDocument.URI = uri
	change.TextDocument.Version = 2
	if err := s.DidChange(ctx, change); err != nil {
		t.Fatal(err)
	}
	doc = s.docs.get(string(uri))
	if doc.version != 2 || doc.root != nil || doc.dialect != format.DictLiteralDialect {
		t.Errorf("changed %+v", doc)
	}
	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(string(uri)) != nil {
		t.Error("document still open")
	}
}

func TestHover(t *testing.T) {
	s := newServer()
	uri := "file:///h.json"
	s.docs.put(uri, format.JSONDialect, `{"a": [1, "x"]}`, 1)
	hover := func(char uint32) string {
		h, err := s.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: protocol.DocumentURI(uri)},
				Position:     protocol.Position{Character: char},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if h == nil {
			return ""
		}
		return h.Contents.Value
	}
	tests := []struct {
		char uint32
		want string
	}{
		{0, "**Path:** `$`\n\n**Type:** Object[1]"},
		{2, "**Path:** `a`\n\n**Type:** Array[2]"},
		{7, "**Path:** `a[0]`\n\n**Type:** Number\n\n**Value:** `1`"},
		{11, "**Path:** `a[1]`\n\n**Type:** String\n\n**Value:** `\"x\"`"},
	}
	for _, tt := range tests {
		if got := hover(tt.char); got != tt.want {
			t.Errorf("hover at %d:\n%s\nwant\n%s", tt.char, got, tt.want)
		}
	}
	s.docs.put(uri, format.JSONDialect, `{"a": `, 2)
	if got := hover(0); got != "" {
		t.Errorf("hover on a broken document: %q", got)
	}
}

func TestFormatting(t *testing.T) {
	ds := newServer().docs
	doc := ds.put("file:///f.json", format.JSONDialect, `{"a":1}`, 1)
	edits := formatEdits(doc)
	want := []protocol.TextEdit{{
		Range: protocol.Range{
			End: protocol.Position{Line: 1},
		},
		NewText: "{\n    \"a\": 1\n}\n",
	}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("edits (-want +got):\n%s", diff)
	}
	doc = ds.put("file:///f.json", format.JSONDialect, edits[0].NewText, 2)
	if edits := formatEdits(doc); edits == nil || len(edits) != 0 {
		t.Errorf("formatted document got edits %v", edits)
	}
}

func TestSemanticTokens(t *testing.T) {
	s := newServer()
	s.docs.put("file:///t.js", format.ObjectLiteralDialect, `{"a": 1, b: true}`, 1)
	params := &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///t.js"},
	}
	res, err := s.SemanticTokensFull(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{
		0, 1, 3, semProperty, 0,
		0, 3, 1, semOperator, 0,
		0, 2, 1, semNumber, 0,
		0, 3, 1, semProperty, 0,
		0, 1, 1, semOperator, 0,
		0, 2, 4, semKeyword, 0,
	}
	if diff := cmp.Diff(want, res.Data); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}

	rng, err := s.SemanticTokensRange(context.Background(), &protocol.SemanticTokensRangeParams{
		TextDocument: params.TextDocument,
		Range: protocol.Range{
			Start: protocol.Position{Character: 9},
			End:   protocol.Position{Character: 12},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{0, 9, 1, semProperty, 0, 0, 1, 1, semOperator, 0}, rng.Data); diff != "" {
		t.Errorf("range tokens (-want +got):\n%s", diff)
	}

	s.docs.put("file:///t.py", format.DictLiteralDialect, `{'a': 1}`, 1)
	params.TextDocument.URI = "file:///t.py"
	res, err = s.SemanticTokensFull(context.Background(), params)
	if err != nil || len(res.Data) != 0 {
		t.Errorf("dict literal tokens %v %v", res, err)
	}
}
