package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/litview/token"
)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func KeySeg(k string) Segment {
	return Segment{Key: k}
}

func IndexSeg(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

// Text is the key, or the decimal form of the index.
func (s Segment) Text() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Key
}

// Same reports whether s and o address the same child. Index and key
// segments agree when the key is the decimal form of the index.
func (s Segment) Same(o Segment) bool {
	if s.IsIndex && o.IsIndex {
		return s.Index == o.Index
	}
	return s.Text() == o.Text()
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if pathQuoteKey(s.Key) {
		return token.Quote(s.Key, '"')
	}
	return s.Key
}

// Path addresses a node by descent from the root. The empty path is the
// root itself.
type Path []Segment

// String renders p in kinded form, e.g. `a.b[0]` or `"x.y"[2].z`.
func (p Path) String() string {
	b := &strings.Builder{}
	for i, seg := range p {
		if !seg.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Equal compares p and o segment by segment.
func (p Path) Equal(o Path) bool {
	return len(p) == len(o) && p.HasPrefix(o)
}

// HasPrefix reports whether pre is a segment-wise prefix of p. A key is
// never a prefix of a longer key.
func (p Path) HasPrefix(pre Path) bool {
	if len(pre) > len(p) {
		return false
	}
	for i := range pre {
		if !p[i].Same(pre[i]) {
			return false
		}
	}
	return true
}

// Parent is p without its last segment. The root is its own parent.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}

// Last is the final segment of a non-empty path.
func (p Path) Last() Segment {
	return p[len(p)-1]
}

// Append returns a new path extending p with segs.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}

func pathQuoteKey(k string) bool {
	if k == "" {
		return true
	}
	for i := 0; i < len(k); i++ {
		switch c := k[i]; c {
		case '.', '[', ']', '"', '\'', ' ', '\\', '$':
			return true
		default:
			if c < 0x20 || c == 0x7f {
				return true
			}
		}
	}
	return false
}

// PathOf returns the path from the root of y's tree to y.
func PathOf(y *Node) Path {
	var rev Path
	for n := y; n.Parent != nil; n = n.Parent {
		switch n.Parent.Type {
		case ObjectType:
			rev = append(rev, KeySeg(n.ParentField))
		case ArrayType:
			rev = append(rev, IndexSeg(n.ParentIndex))
		default:
			panic("parent but not in container")
		}
	}
	res := make(Path, len(rev))
	for i, seg := range rev {
		res[len(rev)-1-i] = seg
	}
	return res
}

// ParsePath parses the kinded form written by Path.String. It also accepts
// an optional leading "$" and the dotted form `a.0.b`, where numeric
// segments are keys that address array elements by their decimal index.
func ParsePath(s string) (Path, error) {
	orig := s
	if s == "$" || strings.HasPrefix(s, "$.") || strings.HasPrefix(s, "$[") {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, ".")
	res := Path{}
	first := true
	for len(s) > 0 {
		switch {
		case s[0] == '[':
			end := strings.IndexByte(s, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w %q: expected ']'", ErrBadPath, orig)
			}
			idx, err := strconv.Atoi(s[1:end])
			if err != nil || idx < 0 || strconv.Itoa(idx) != s[1:end] {
				return nil, fmt.Errorf("%w %q: bad index %q", ErrBadPath, orig, s[1:end])
			}
			res = append(res, IndexSeg(idx))
			s = s[end+1:]
			first = false
			continue
		case s[0] == '.':
			if first {
				return nil, fmt.Errorf("%w %q: empty segment", ErrBadPath, orig)
			}
			s = s[1:]
		case !first:
			return nil, fmt.Errorf("%w %q: expected '.' or '[' before %q", ErrBadPath, orig, s)
		}
		first = false
		if len(s) > 0 && s[0] == '"' {
			tok, err := token.NewScanner([]byte(s), token.TokenJSON()).Next()
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrBadPath, orig, err)
			}
			if tok.Type != token.TString {
				return nil, fmt.Errorf("%w %q: bad quoted key", ErrBadPath, orig)
			}
			res = append(res, KeySeg(tok.Value))
			s = s[tok.End():]
			continue
		}
		end := strings.IndexAny(s, ".[")
		if end == -1 {
			end = len(s)
		}
		if end == 0 {
			return nil, fmt.Errorf("%w %q: empty segment", ErrBadPath, orig)
		}
		res = append(res, KeySeg(s[:end]))
		s = s[end:]
	}
	return res, nil
}

func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}
