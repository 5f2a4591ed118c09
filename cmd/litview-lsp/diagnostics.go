package main

import (
	"context"
	"errors"
	"path"
	"sync"

	"github.com/signadot/litview/debug"
	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open text document. root is nil when content does not
// parse, in which case err holds the failure.
type document struct {
	uri       string
	dialect   format.Dialect
	content   []byte
	lines     *lineIndex
	version   int32
	root      *ir.Node
	err       error
	positions map[*ir.Node]int
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, d format.Dialect, content string, version int32) *document {
	positions := make(map[*ir.Node]int)
	root, err := parse.Parse([]byte(content), parse.ParseDialect(d), parse.ParsePositions(positions))
	doc := &document{
		uri:       uri,
		dialect:   d,
		content:   []byte(content),
		lines:     newLineIndex([]byte(content)),
		version:   version,
		root:      root,
		err:       err,
		positions: positions,
	}
	if debug.LSP() {
		debug.Logf("put %s v%d as %s: err=%v", uri, version, d, err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// dialectFor picks a dialect from the client's language id, falling back
// to the document's file suffix and then to json.
func dialectFor(uri string, languageID protocol.LanguageIdentifier) format.Dialect {
	if d, err := format.ParseDialect(string(languageID)); err == nil {
		return d
	}
	if d, ok := format.DialectForSuffix(path.Ext(uri)); ok {
		return d
	}
	return format.JSONDialect
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Version:     uint32(doc.version),
			Diagnostics: diagnostics,
		})
		if err != nil && debug.LSP() {
			debug.Logf("publish diagnostics for %s: %v", uri, err)
		}
	}
}

// validateDocument reports the parse failure of doc, if any. Empty
// documents are not reported.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil || errors.Is(doc.err, parse.ErrEmptyInput) {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "litview",
	}
	var se *parse.SyntaxError
	if errors.As(doc.err, &se) {
		diagnostic.Message = se.Msg
		diagnostic.Range = doc.lines.errorRange(se.Offset)
		if errors.Is(se, parse.ErrUnsupported) {
			diagnostic.Code = "unsupported"
		}
	}
	return append(diagnostics, diagnostic)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	d := dialectFor(uri, params.TextDocument.LanguageID)
	s.docs.put(uri, d, params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

// DidChange expects full-document sync; the last change carries the whole
// text.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil || len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(uri, doc.dialect, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
