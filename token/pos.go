package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Locate maps a byte offset in text to a 1-based line and column.
// Offsets outside [0, len(text)] are clamped.
func Locate(text []byte, offset int) (line, col int) {
	offset = clamp(offset, len(text))
	line = 1
	last := -1
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			last = i
		}
	}
	return line, offset - last
}

func clamp(off, n int) int {
	if off < 0 {
		return 0
	}
	if off > n {
		return n
	}
	return off
}

// PosDoc indexes the newlines of a document so that repeated offset
// lookups do not rescan the text. It agrees with Locate.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	off = clamp(off, len(p.d))
	// di is the number of newlines strictly before off
	di := sort.Search(len(p.n), func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

// Offset is the inverse of LineCol for positions inside the document.
// Columns past the end of a line resolve to the line's end.
func (p *PosDoc) Offset(line, col int) int {
	col = max(col, 1)
	if line <= 1 {
		return clamp(col-1, p.lineEnd(0))
	}
	if line-2 >= len(p.n) {
		return len(p.d)
	}
	start := p.n[line-2] + 1
	return clamp(start+col-1, p.lineEnd(line-1))
}

func (p *PosDoc) lineEnd(li int) int {
	if li < len(p.n) {
		return p.n[li]
	}
	return len(p.d)
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line, col)
}
