package main

import (
	"bytes"
	"context"

	"github.com/signadot/litview/debug"
	"github.com/signadot/litview/format"
	"github.com/signadot/litview/token"

	"go.lsp.dev/protocol"
)

// tokenLegend is indexed by the token type numbers sent to the client.
var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenOperator,
}

const (
	semProperty uint32 = iota
	semString
	semNumber
	semKeyword
	semOperator
)

type semToken struct {
	pos    protocol.Position
	length uint32
	typ    uint32
}

// collectSemanticTokens classifies the tokens of doc. Only the json and
// javascript dialects are scanned; dict literals yield no tokens.
func collectSemanticTokens(doc *document) []semToken {
	var opts []token.TokenOpt
	switch doc.dialect {
	case format.JSONDialect:
		opts = append(opts, token.TokenJSON())
	case format.ObjectLiteralDialect:
		opts = append(opts, token.TokenLiteral())
	default:
		return nil
	}
	toks, err := token.Tokenize(nil, doc.content, opts...)
	if err != nil {
		if debug.LSP() {
			debug.Logf("semantic tokens for %s: %v", doc.uri, err)
		}
		return nil
	}
	res := make([]semToken, 0, len(toks))
	for i := range toks {
		tok := &toks[i]
		var typ uint32
		switch tok.Type {
		case token.TEOF, token.TComma, token.TLCurl, token.TRCurl, token.TLSquare, token.TRSquare:
			continue
		case token.TColon:
			typ = semOperator
		case token.TInteger, token.TFloat:
			typ = semNumber
		case token.TString, token.TIdent:
			switch {
			case i+1 < len(toks) && toks[i+1].Type == token.TColon:
				typ = semProperty
			case tok.Type == token.TString:
				typ = semString
			default:
				typ = semKeyword
			}
		}
		text := tok.Bytes
		if nl := bytes.IndexByte(text, '\n'); nl >= 0 {
			text = text[:nl]
		}
		res = append(res, semToken{
			pos:    doc.lines.position(tok.Off),
			length: uint32(utf16Len(text)),
			typ:    typ,
		})
	}
	return res
}

// encodeSemanticTokens produces the relative encoding of the protocol:
// line delta, start delta, length, type and modifiers per token.
func encodeSemanticTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		deltaLine := t.pos.Line - prevLine
		deltaChar := t.pos.Character
		if deltaLine == 0 {
			deltaChar -= prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, t.typ, 0)
		prevLine, prevChar = t.pos.Line, t.pos.Character
	}
	return data
}

func inRange(p protocol.Position, r protocol.Range) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Character < r.Start.Character {
		return false
	}
	if p.Line == r.End.Line && p.Character >= r.End.Character {
		return false
	}
	return true
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var toks []semToken
	for _, t := range collectSemanticTokens(doc) {
		if inRange(t.pos, params.Range) {
			toks = append(toks, t)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(toks),
	}, nil
}
