package litview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/litview/debug"
	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/format"
	"github.com/signadot/litview/ir"
	"github.com/signadot/litview/parse"
)

var ErrNoDocument = errors.New("no document loaded")

// Document holds one parsed document and the text it came from. It is
// not safe for concurrent use.
type Document struct {
	Dialect format.Dialect

	root *ir.Node
	text []byte
}

func New(d format.Dialect) *Document {
	return &Document{Dialect: d}
}

// Load parses text in the document's dialect and replaces the root. On
// failure the previous root is kept.
func (doc *Document) Load(text []byte) error {
	root, err := parse.Parse(text, parse.ParseDialect(doc.Dialect))
	if debug.Parse() {
		debug.Logf("load %d bytes as %s: err=%v", len(text), doc.Dialect, err)
	}
	if err != nil {
		return err
	}
	doc.root = root
	doc.text = text
	return nil
}

func (doc *Document) LoadSample(d format.Dialect) error {
	if err := doc.SetDialect(d); err != nil {
		return err
	}
	return doc.Load([]byte(Sample(d)))
}

func (doc *Document) SetDialect(d format.Dialect) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", format.ErrUnsupportedDialect, int(d))
	}
	doc.Dialect = d
	return nil
}

func (doc *Document) Root() *ir.Node {
	return doc.root
}

// Text returns the source of the last successful Load.
func (doc *Document) Text() []byte {
	return doc.text
}

func (doc *Document) Clear() {
	doc.root = nil
	doc.text = nil
}

func (doc *Document) Format() (string, error) {
	return doc.FormatAs(doc.Dialect)
}

func (doc *Document) FormatAs(d format.Dialect) (string, error) {
	if doc.root == nil {
		return "", ErrNoDocument
	}
	return encode.String(doc.root, encode.EncodeDialect(d))
}

func (doc *Document) Export(f format.ExportFormat) (text, filename string, err error) {
	if doc.root == nil {
		return "", "", ErrNoDocument
	}
	return encode.Export(doc.root, f)
}

func (doc *Document) Resolve(p ir.Path) (*ir.Node, error) {
	if doc.root == nil {
		return nil, ErrNoDocument
	}
	return ir.Resolve(doc.root, p)
}

// Move relocates the subtree at src into the container at dst. See
// [ir.Move].
func (doc *Document) Move(src, dst ir.Path) error {
	if doc.root == nil {
		return ErrNoDocument
	}
	err := ir.Move(doc.root, src, dst)
	if debug.Move() {
		debug.Logf("move %s -> %s: err=%v", src, dst, err)
	}
	return err
}

// TryMove is Move reporting only whether the tree changed.
func (doc *Document) TryMove(src, dst ir.Path) bool {
	return doc.Move(src, dst) == nil
}

// DescribeError renders a parse failure for display, locating syntax
// errors in text, e.g.
//
//	JSON parse error: expected ':' (line 3, column 8)
func DescribeError(err error, text []byte) string {
	if errors.Is(err, parse.ErrEmptyInput) {
		return "input is empty, enter a document"
	}
	var se *parse.SyntaxError
	if errors.As(err, &se) {
		line, col := se.Locate(text)
		return fmt.Sprintf("%s parse error: %s (line %d, column %d)",
			strings.ToUpper(se.Dialect.String()), se.Msg, line, col)
	}
	return err.Error()
}
