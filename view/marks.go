package view

import (
	"slices"

	"github.com/iw2rmb/treelist/tree"
)

// markSet is an insertion-ordered id set.
type markSet struct {
	order []tree.NodeID
	set   map[tree.NodeID]struct{}
}

func newMarkSet() markSet {
	return markSet{set: map[tree.NodeID]struct{}{}}
}

func (m *markSet) has(id tree.NodeID) bool {
	_, ok := m.set[id]
	return ok
}

func (m *markSet) add(id tree.NodeID) bool {
	if m.has(id) {
		return false
	}
	m.set[id] = struct{}{}
	m.order = append(m.order, id)
	return true
}

func (m *markSet) remove(id tree.NodeID) bool {
	if !m.has(id) {
		return false
	}
	delete(m.set, id)
	m.order = slices.DeleteFunc(m.order, func(x tree.NodeID) bool { return x == id })
	return true
}

func (m *markSet) retain(keep func(tree.NodeID) bool) bool {
	n := len(m.order)
	m.order = slices.DeleteFunc(m.order, func(id tree.NodeID) bool {
		if keep(id) {
			return false
		}
		delete(m.set, id)
		return true
	})
	return len(m.order) != n
}

func (m *markSet) clear() bool {
	if len(m.order) == 0 {
		return false
	}
	m.order = nil
	clear(m.set)
	return true
}

// Marked returns the Mark Set in marking order.
func (s *State) Marked() []tree.NodeID {
	return slices.Clone(s.marks.order)
}

func (s *State) IsMarked(id tree.NodeID) bool { return s.marks.has(id) }

// Mark stages id for a later Paste. The root cannot be marked.
func (s *State) Mark(id tree.NodeID) error {
	const op = "mark"
	if err := s.checkMarkable(op, id); err != nil {
		return s.fail(op, err)
	}
	s.updateMarks(func() bool { return s.marks.add(id) })
	return nil
}

func (s *State) Unmark(id tree.NodeID) error {
	if !s.contains(id) {
		return s.fail("unmark", notFound("unmark", id))
	}
	s.updateMarks(func() bool { return s.marks.remove(id) })
	return nil
}

func (s *State) ToggleMark(id tree.NodeID) error {
	if s.marks.has(id) {
		return s.Unmark(id)
	}
	return s.Mark(id)
}

func (s *State) ClearMarks() {
	s.updateMarks(s.marks.clear)
}

func (s *State) checkMarkable(op string, id tree.NodeID) error {
	if !s.contains(id) {
		return notFound(op, id)
	}
	if s.isRoot(id) {
		return invalidOperation(op, id, "the root cannot be marked")
	}
	return nil
}

func (s *State) updateMarks(f func() bool) {
	cb := s.beginChange(ChangeMarks)
	if !f() {
		return
	}
	s.syncMarkFlags()
	s.version++
	s.commitChange(cb)
}

// IsEffectivelyMarked reports whether id is marked or has children that are
// all effectively marked.
func (s *State) IsEffectivelyMarked(id tree.NodeID) bool {
	if len(s.marks.order) == 0 || !s.contains(id) {
		return false
	}
	return s.effectiveMark(id, map[tree.NodeID]bool{})
}

func (s *State) syncMarkFlags() {
	var memo map[tree.NodeID]bool
	if len(s.marks.order) > 0 {
		memo = make(map[tree.NodeID]bool, len(s.visible))
	}
	for i := range s.visible {
		n := &s.visible[i]
		n.Marked = s.marks.has(n.ID)
		n.EffectiveMarked = memo != nil && s.effectiveMark(n.ID, memo)
	}
}

// effectiveMark memoizes per id. An id is recorded false while its children
// are evaluated so a cyclic model terminates.
func (s *State) effectiveMark(id tree.NodeID, memo map[tree.NodeID]bool) bool {
	if v, ok := memo[id]; ok {
		return v
	}
	if s.marks.has(id) {
		memo[id] = true
		return true
	}
	memo[id] = false
	children := s.model.Children(id)
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if !s.effectiveMark(c, memo) {
			return false
		}
	}
	memo[id] = true
	return true
}
