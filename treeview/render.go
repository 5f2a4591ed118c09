package treeview

import (
	"io"
	"strings"

	"github.com/signadot/litview/encode"
	"github.com/signadot/litview/ir"
)

const (
	openIcon   = "▼"
	closedIcon = "▶"
)

type renderOpts struct {
	colors *encode.Colors
	indent int
}

type RenderOption func(*renderOpts)

// RenderColors colors keys, summaries and scalar values. nil disables
// coloring.
func RenderColors(c *encode.Colors) RenderOption {
	return func(o *renderOpts) { o.colors = c }
}

func RenderIndent(n int) RenderOption {
	return func(o *renderOpts) { o.indent = n }
}

// Render writes root as an indented tree, one node per line. Composites
// show their summary behind an open or closed marker and list their
// children only when st reports them open. A nil st opens everything.
func Render(w io.Writer, root *ir.Node, st *State, opts ...RenderOption) error {
	ro := &renderOpts{indent: 2}
	for _, opt := range opts {
		opt(ro)
	}
	r := &renderer{w: w, st: st, opts: ro}
	return r.node(root, nil, "")
}

type renderer struct {
	w    io.Writer
	st   *State
	opts *renderOpts
}

func (r *renderer) color(t ir.Type, a encode.ColorAttr, v string) string {
	if r.opts.colors == nil {
		return v
	}
	return r.opts.colors.Color(t, a, v)
}

func (r *renderer) expanded(p ir.Path) bool {
	if r.st == nil {
		return true
	}
	return r.st.Expanded(p)
}

func (r *renderer) node(n *ir.Node, p ir.Path, key string) error {
	b := &strings.Builder{}
	b.WriteString(strings.Repeat(" ", r.opts.indent*len(p)))
	open := false
	if !n.Type.IsLeaf() {
		open = r.expanded(p)
		icon := closedIcon
		if open {
			icon = openIcon
		}
		b.WriteString(r.color(n.Type, encode.SepColor, icon))
		b.WriteByte(' ')
	}
	if len(p) != 0 {
		b.WriteString(r.color(ir.ObjectType, encode.FieldColor, key))
		b.WriteString(": ")
	}
	if n.Type.IsLeaf() {
		v, err := encode.String(n, encode.EncodeJSON(), encode.EncodeWire(true))
		if err != nil {
			return err
		}
		b.WriteString(r.color(n.Type, encode.ValueColor, v))
	} else {
		b.WriteString(r.color(n.Type, encode.SummaryColor, ir.Summary(n)))
	}
	b.WriteByte('\n')
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return err
	}
	if !open {
		return nil
	}
	for _, e := range ir.Entries(n) {
		if err := r.node(e.Node, p.Append(e.Seg), e.Seg.Text()); err != nil {
			return err
		}
	}
	return nil
}
