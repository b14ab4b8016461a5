package view

import (
	"slices"

	"github.com/iw2rmb/treelist/tree"
)

// Expansion is the set of expanded node ids.
type Expansion struct {
	set map[tree.NodeID]struct{}
}

// NewExpansion returns a set holding ids.
func NewExpansion(ids ...tree.NodeID) *Expansion {
	e := &Expansion{set: make(map[tree.NodeID]struct{}, len(ids))}
	for _, id := range ids {
		e.set[id] = struct{}{}
	}
	return e
}

// IsExpanded reports membership. A nil set expands nothing.
func (e *Expansion) IsExpanded(id tree.NodeID) bool {
	if e == nil {
		return false
	}
	_, ok := e.set[id]
	return ok
}

// Expand adds id and reports whether the set changed.
func (e *Expansion) Expand(id tree.NodeID) bool {
	if e.IsExpanded(id) {
		return false
	}
	e.set[id] = struct{}{}
	return true
}

// Collapse removes id and reports whether the set changed.
func (e *Expansion) Collapse(id tree.NodeID) bool {
	if !e.IsExpanded(id) {
		return false
	}
	delete(e.set, id)
	return true
}

// Toggle flips id and returns its new state.
func (e *Expansion) Toggle(id tree.NodeID) bool {
	if e.Collapse(id) {
		return false
	}
	e.Expand(id)
	return true
}

// Clear empties the set and reports whether it held anything.
func (e *Expansion) Clear() bool {
	if len(e.set) == 0 {
		return false
	}
	clear(e.set)
	return true
}

func (e *Expansion) Len() int {
	if e == nil {
		return 0
	}
	return len(e.set)
}

// IDs returns the expanded ids in sorted order.
func (e *Expansion) IDs() []tree.NodeID {
	if e == nil {
		return nil
	}
	out := make([]tree.NodeID, 0, len(e.set))
	for id := range e.set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Retain drops every id for which keep returns false.
func (e *Expansion) Retain(keep func(tree.NodeID) bool) {
	for id := range e.set {
		if !keep(id) {
			delete(e.set, id)
		}
	}
}

func (e *Expansion) clone() *Expansion {
	out := &Expansion{set: make(map[tree.NodeID]struct{}, len(e.set))}
	for id := range e.set {
		out.set[id] = struct{}{}
	}
	return out
}

// IsExpanded reports whether id is in the Expansion set.
func (s *State) IsExpanded(id tree.NodeID) bool { return s.expanded.IsExpanded(id) }

// Expanded returns the expanded ids in sorted order.
func (s *State) Expanded() []tree.NodeID { return s.expanded.IDs() }

func (s *State) Expand(id tree.NodeID) error {
	return s.mutateExpansion("expand", id, func() bool { return s.expanded.Expand(id) })
}

func (s *State) Collapse(id tree.NodeID) error {
	return s.mutateExpansion("collapse", id, func() bool { return s.expanded.Collapse(id) })
}

func (s *State) Toggle(id tree.NodeID) error {
	return s.mutateExpansion("toggle", id, func() bool {
		s.expanded.Toggle(id)
		return true
	})
}

// ToggleRecursive expands id with its whole subtree, or collapses all of it
// when id is already expanded.
func (s *State) ToggleRecursive(id tree.NodeID) error {
	var walkErr error
	err := s.mutateExpansion("toggle_recursive", id, func() bool {
		walkErr = s.expandSubtree(id, !s.expanded.IsExpanded(id))
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	return err
}

// ExpandAll expands every node that has children.
func (s *State) ExpandAll() error {
	root, ok := s.root()
	if !ok {
		return nil
	}
	var walkErr error
	err := s.mutateExpansion("expand_all", root, func() bool {
		walkErr = s.expandSubtree(root, true)
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	return err
}

func (s *State) CollapseAll() error {
	return s.mutateExpansion("collapse_all", "", s.expanded.Clear)
}

// mutateExpansion applies f and recomputes. The set is restored when the
// recompute fails. An empty id skips the existence check.
func (s *State) mutateExpansion(op string, id tree.NodeID, f func() bool) error {
	if id != "" && !s.contains(id) {
		return notFound(op, id)
	}
	cb := s.beginChange(ChangeExpansion)
	saved := s.expanded.clone()
	if !f() {
		s.expanded = saved
		return nil
	}
	if err := s.refresh(); err != nil {
		s.expanded = saved
		return err
	}
	s.version++
	s.commitChange(cb)
	return nil
}

// expandSubtree sets the expansion of from and every descendant that has
// children.
func (s *State) expandSubtree(from tree.NodeID, expand bool) error {
	visited := map[tree.NodeID]struct{}{}
	stack := []tree.NodeID{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[id]; ok {
			return structural(id, "node reached twice")
		}
		visited[id] = struct{}{}

		children := s.model.Children(id)
		if !expand {
			s.expanded.Collapse(id)
		} else if len(children) > 0 {
			s.expanded.Expand(id)
		}
		stack = append(stack, children...)
	}
	return nil
}
