package view

import (
	"slices"

	"github.com/iw2rmb/treelist/tree"
)

// Selected returns the selected id.
func (s *State) Selected() (tree.NodeID, bool) {
	return s.selected, s.hasSel
}

// SelectedIndex returns the Visible List index of the selection, or -1.
func (s *State) SelectedIndex() int {
	if !s.hasSel {
		return -1
	}
	i, ok := s.index[s.selected]
	if !ok {
		return -1
	}
	return i
}

// SelectedNode returns the selected entry.
func (s *State) SelectedNode() (VisibleNode, bool) {
	return s.At(s.SelectedIndex())
}

func (s *State) MoveNext() bool { return s.moveBy(1) }
func (s *State) MovePrev() bool { return s.moveBy(-1) }

func (s *State) MoveFirst() bool { return s.moveTo(0) }
func (s *State) MoveLast() bool  { return s.moveTo(len(s.visible) - 1) }

// MovePage moves by delta viewport pages.
func (s *State) MovePage(delta int) bool {
	return s.moveBy(delta * s.height)
}

// ClearSelection drops the selection.
func (s *State) ClearSelection() {
	cb := s.beginChange(ChangeSelection)
	s.clearSelection()
	s.commitChange(cb)
}

// Select selects id, expanding collapsed ancestors so it becomes visible.
//
// It fails with NotFound for unknown ids and InvalidOperation when id is
// unreachable from the root or hidden by the filter. A failed call changes
// nothing: the reveal is flattened on a copy of the expansion set first.
func (s *State) Select(id tree.NodeID) error {
	const op = "select"
	if !s.contains(id) {
		return notFound(op, id)
	}
	if i, ok := s.index[id]; ok {
		cb := s.beginChange(ChangeSelection)
		s.setSelected(i)
		s.ensureVisible()
		s.commitChange(cb)
		return nil
	}

	path, ok := s.pathTo(id)
	if !ok {
		return invalidOperation(op, id, "node is not reachable from the root")
	}
	expanded := s.expanded.clone()
	for _, anc := range path[:len(path)-1] {
		expanded.Expand(anc)
	}
	params := s.params()
	params.Expanded = expanded
	list, err := Flatten(s.model, params)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(list, func(n VisibleNode) bool { return n.ID == id }) {
		return invalidOperation(op, id, "node is hidden by the filter")
	}

	cb := s.beginChange(ChangeSelection)
	defer s.commitChange(cb)
	saved := s.expanded
	s.expanded = expanded
	if err := s.refresh(); err != nil {
		s.expanded = saved
		return err
	}
	s.version++
	i, ok := s.index[id]
	if !ok {
		return invalidOperation(op, id, "node is hidden by the filter")
	}
	s.setSelected(i)
	s.ensureVisible()
	return nil
}

// MoveParent collapses an expanded selection, else selects its parent.
func (s *State) MoveParent() bool {
	n, ok := s.SelectedNode()
	if !ok {
		return s.moveTo(0)
	}
	if n.Expanded {
		return s.Collapse(n.ID) == nil
	}
	if !n.HasParent {
		return false
	}
	i, ok := s.index[n.Parent]
	if !ok {
		return false
	}
	return s.moveTo(i)
}

// MoveChild expands a collapsed selection, else selects its first child.
func (s *State) MoveChild() bool {
	n, ok := s.SelectedNode()
	if !ok {
		return s.moveTo(0)
	}
	if !n.HasChildren {
		return false
	}
	if !n.Expanded {
		return s.Expand(n.ID) == nil
	}
	return s.moveTo(s.SelectedIndex() + 1)
}

func (s *State) moveBy(delta int) bool {
	if len(s.visible) == 0 {
		return false
	}
	i := s.SelectedIndex()
	if i < 0 {
		return s.moveTo(0)
	}
	return s.moveTo(i + delta)
}

// moveTo selects index i clamped to the list and reports whether the
// selection changed.
func (s *State) moveTo(i int) bool {
	if len(s.visible) == 0 {
		return false
	}
	cb := s.beginChange(ChangeSelection)
	before, had := s.selected, s.hasSel
	s.setSelected(min(max(i, 0), len(s.visible)-1))
	s.ensureVisible()
	s.commitChange(cb)
	return !had || before != s.selected
}

func (s *State) setSelected(i int) {
	s.selected = s.visible[i].ID
	s.hasSel = true
}

func (s *State) clearSelection() {
	s.selected = ""
	s.hasSel = false
}

// pathTo returns the root-to-id path through the tree.
func (s *State) pathTo(id tree.NodeID) ([]tree.NodeID, bool) {
	root, ok := s.root()
	if !ok {
		return nil, false
	}
	visited := map[tree.NodeID]struct{}{}
	var walk func(n tree.NodeID, path []tree.NodeID) ([]tree.NodeID, bool)
	walk = func(n tree.NodeID, path []tree.NodeID) ([]tree.NodeID, bool) {
		if _, ok := visited[n]; ok {
			return nil, false
		}
		visited[n] = struct{}{}
		path = append(path, n)
		if n == id {
			return path, true
		}
		for _, c := range s.model.Children(n) {
			if p, ok := walk(c, path); ok {
				return p, true
			}
		}
		return nil, false
	}
	return walk(root, nil)
}
