package view

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/tree"
)

// NodeSpec describes a node created by Add.
type NodeSpec struct {
	Label string
	// Index is the position among the parent's children. Negative appends.
	Index int
}

// Add creates a node under parent, reveals it and selects it.
func (s *State) Add(parent tree.NodeID, spec NodeSpec) (tree.NodeID, error) {
	const op = "add"
	ed, err := s.editor(op)
	if err != nil {
		return "", s.fail(op, err)
	}
	if !ed.Contains(parent) {
		return "", s.fail(op, notFound(op, parent))
	}
	if spec.Label == "" {
		return "", s.fail(op, invalidOperation(op, parent, "label is empty"))
	}
	n := len(ed.Children(parent))
	index := spec.Index
	if index < 0 {
		index = n
	}
	if index > n {
		return "", s.fail(op, invalidOperation(op, parent, "index out of range"))
	}

	cb := s.beginChange(ChangeStructure)
	id := ed.Create(spec.Label)
	ed.Attach(parent, id, index)
	s.reveal(parent)
	err = s.applied(op, id)
	if i, ok := s.index[id]; ok {
		s.setSelected(i)
		s.ensureVisible()
	}
	s.commitChange(cb)
	return id, err
}

// Rename replaces the label of id.
func (s *State) Rename(id tree.NodeID, label string) error {
	const op = "rename"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	if !ed.Contains(id) {
		return s.fail(op, notFound(op, id))
	}
	if label == "" {
		return s.fail(op, invalidOperation(op, id, "label is empty"))
	}

	cb := s.beginChange(ChangeStructure)
	ed.SetLabel(id, label)
	err = s.applied(op, id)
	s.commitChange(cb)
	return err
}

// Delete removes id and its subtree from the tree.
func (s *State) Delete(id tree.NodeID) error {
	const op = "delete"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	if !ed.Contains(id) {
		return s.fail(op, notFound(op, id))
	}
	if s.isRoot(id) {
		return s.fail(op, invalidOperation(op, id, "the root cannot be deleted"))
	}

	cb := s.beginChange(ChangeStructure)
	ed.Remove(id)
	s.expanded.Retain(ed.Contains)
	err = s.applied(op, id)
	s.commitChange(cb)
	return err
}

// Detach cuts id from its parent and stages it in the Mark Set.
func (s *State) Detach(id tree.NodeID) error {
	const op = "detach"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	if !ed.Contains(id) {
		return s.fail(op, notFound(op, id))
	}
	if s.isRoot(id) {
		return s.fail(op, invalidOperation(op, id, "the root cannot be detached"))
	}
	if _, ok := ed.Parent(id); !ok {
		return s.fail(op, invalidOperation(op, id, "node is already detached"))
	}

	cb := s.beginChange(ChangeStructure)
	ed.Detach(id)
	s.marks.add(id)
	err = s.applied(op, id)
	s.commitChange(cb)
	return err
}

// Move reattaches id under target at index. A negative index appends.
//
// It fails with CycleDetected when target is id or one of its descendants.
func (s *State) Move(id, target tree.NodeID, index int) error {
	const op = "move"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	if err := s.checkMove(op, ed, id, target); err != nil {
		return s.fail(op, err)
	}
	n := len(ed.Children(target))
	if p, ok := ed.Parent(id); ok && p == target {
		n--
	}
	if index < 0 {
		index = n
	}
	if index > n {
		return s.fail(op, invalidOperation(op, id, "index out of range"))
	}

	cb := s.beginChange(ChangeStructure)
	if _, ok := ed.Parent(id); ok {
		ed.Detach(id)
	}
	ed.Attach(target, id, index)
	s.marks.remove(id)
	s.reveal(target)
	err = s.applied(op, id)
	if i, ok := s.index[id]; ok {
		s.setSelected(i)
		s.ensureVisible()
	}
	s.commitChange(cb)
	return err
}

// Reorder shifts id by delta positions among its siblings.
func (s *State) Reorder(id tree.NodeID, delta int) error {
	const op = "reorder"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	if !ed.Contains(id) {
		return s.fail(op, notFound(op, id))
	}
	parent, ok := ed.Parent(id)
	if !ok {
		return s.fail(op, invalidOperation(op, id, "node has no parent"))
	}
	siblings := ed.Children(parent)
	pos := slices.Index(siblings, id)
	next := pos + delta
	if pos < 0 || next < 0 || next >= len(siblings) {
		return s.fail(op, invalidOperation(op, id, "cannot move beyond sibling bounds"))
	}
	if delta == 0 {
		return nil
	}

	cb := s.beginChange(ChangeStructure)
	ed.Detach(id)
	ed.Attach(parent, id, next)
	err = s.applied(op, id)
	s.commitChange(cb)
	return err
}

// Paste reattaches every marked node under target in marking order, clears
// the Mark Set and selects the first pasted node.
func (s *State) Paste(target tree.NodeID) error {
	const op = "paste"
	ed, err := s.editor(op)
	if err != nil {
		return s.fail(op, err)
	}
	s.marks.retain(ed.Contains)
	if len(s.marks.order) == 0 {
		return s.fail(op, invalidOperation(op, target, "mark set is empty"))
	}
	for _, id := range s.marks.order {
		if err := s.checkMove(op, ed, id, target); err != nil {
			return s.fail(op, err)
		}
	}

	cb := s.beginChange(ChangeStructure)
	pasted := slices.Clone(s.marks.order)
	for _, id := range pasted {
		if _, ok := ed.Parent(id); ok {
			ed.Detach(id)
		}
		ed.Attach(target, id, len(ed.Children(target)))
	}
	s.marks.clear()
	s.reveal(target)
	err = s.applied(op, target)
	if i, ok := s.index[pasted[0]]; ok {
		s.setSelected(i)
		s.ensureVisible()
	}
	s.commitChange(cb)
	return err
}

func (s *State) editor(op string) (tree.Editor, error) {
	ed, ok := s.model.(tree.Editor)
	if !ok {
		return nil, invalidOperation(op, "", "tree is read-only")
	}
	return ed, nil
}

// checkMove validates reattaching id under target.
func (s *State) checkMove(op string, ed tree.Editor, id, target tree.NodeID) error {
	if !ed.Contains(id) {
		return notFound(op, id)
	}
	if !ed.Contains(target) {
		return notFound(op, target)
	}
	if s.isRoot(id) {
		return invalidOperation(op, id, "the root cannot be moved")
	}
	if id == target {
		return cycleDetected(op, id, "target is the node itself")
	}
	seen := map[tree.NodeID]struct{}{}
	for cur := target; ; {
		p, ok := ed.Parent(cur)
		if !ok {
			return nil
		}
		if p == id {
			return cycleDetected(op, id, "target "+string(target)+" is a descendant")
		}
		if _, ok := seen[p]; ok {
			return structural(p, "parent chain loops")
		}
		seen[p] = struct{}{}
		cur = p
	}
}

// reveal expands id and its ancestors.
func (s *State) reveal(id tree.NodeID) {
	path, ok := s.pathTo(id)
	if !ok {
		return
	}
	for _, n := range path {
		s.expanded.Expand(n)
	}
}

// applied bumps the version and recomputes after a tree mutation.
func (s *State) applied(op string, id tree.NodeID) error {
	s.version++
	if err := s.refresh(); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"op": op, "id": id}).Debug("treelist: edit applied")
	return nil
}

func (s *State) fail(op string, err error) error {
	s.log.WithFields(logrus.Fields{"op": op, "kind": KindOf(err).String()}).WithError(err).Debug("treelist: edit rejected")
	return err
}
