package main

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/litview/token"

	"go.lsp.dev/protocol"
)

// lineIndex converts between byte offsets of a document and LSP positions,
// which are zero-based and count UTF-16 code units.
type lineIndex struct {
	text []byte
	pd   *token.PosDoc
}

func newLineIndex(text []byte) *lineIndex {
	return &lineIndex{text: text, pd: token.NewPosDoc(text)}
}

func (li *lineIndex) position(off int) protocol.Position {
	off = min(max(off, 0), len(li.text))
	line, col := li.pd.LineCol(off)
	start := off - (col - 1)
	return protocol.Position{
		Line:      uint32(line - 1),
		Character: uint32(utf16Len(li.text[start:off])),
	}
}

// offset is the inverse of position. Characters past the end of a line
// resolve to the line's end.
func (li *lineIndex) offset(pos protocol.Position) int {
	i := li.pd.Offset(int(pos.Line)+1, 1)
	units := 0
	for i < len(li.text) && li.text[i] != '\n' && units < int(pos.Character) {
		r, n := utf8.DecodeRune(li.text[i:])
		units += runeUnits(r)
		i += n
	}
	return i
}

// errorRange covers the character at off, or is empty at the end of a
// line.
func (li *lineIndex) errorRange(off int) protocol.Range {
	off = min(max(off, 0), len(li.text))
	end := off
	if off < len(li.text) && li.text[off] != '\n' {
		_, n := utf8.DecodeRune(li.text[off:])
		end += n
	}
	return protocol.Range{
		Start: li.position(off),
		End:   li.position(end),
	}
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, sz := utf8.DecodeRune(b)
		n += runeUnits(r)
		b = b[sz:]
	}
	return n
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
