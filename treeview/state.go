package treeview

import "github.com/signadot/litview/ir"

// State records which composites of a rendered tree are open. Entries are
// keyed by the node's path string; nodes without an entry are open when
// they are shallower than Level.
//
// A State outlives the tree it was built for: after a move the entries of
// untouched paths still apply.
type State struct {
	Level int
	Open  map[string]bool
}

func NewState(expandLevel int) *State {
	return &State{Level: expandLevel, Open: map[string]bool{}}
}

func (s *State) Expanded(p ir.Path) bool {
	if v, ok := s.Open[p.String()]; ok {
		return v
	}
	return len(p) < s.Level
}

// Toggle flips the node at p and returns its new state.
func (s *State) Toggle(p ir.Path) bool {
	v := !s.Expanded(p)
	if s.Open == nil {
		s.Open = map[string]bool{}
	}
	s.Open[p.String()] = v
	return v
}

func (s *State) ExpandAll(root *ir.Node) {
	s.setAll(root, func(ir.Path) bool { return true })
}

// CollapseAll closes every composite except the root.
func (s *State) CollapseAll(root *ir.Node) {
	s.setAll(root, func(p ir.Path) bool { return len(p) == 0 })
}

func (s *State) setAll(root *ir.Node, open func(ir.Path) bool) {
	if s.Open == nil {
		s.Open = map[string]bool{}
	}
	clear(s.Open)
	if root == nil {
		return
	}
	var walk func(*ir.Node, ir.Path)
	walk = func(n *ir.Node, p ir.Path) {
		if n.Type.IsLeaf() {
			return
		}
		s.Open[p.String()] = open(p)
		for _, e := range ir.Entries(n) {
			walk(e.Node, p.Append(e.Seg))
		}
	}
	walk(root, nil)
}
