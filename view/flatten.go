package view

import (
	"github.com/iw2rmb/treelist/tree"
)

// VisibleNode is one entry of the Visible List.
type VisibleNode struct {
	ID tree.NodeID
	// Parent is the tree parent. HasParent is false only for a visible root.
	Parent    tree.NodeID
	HasParent bool
	Depth     int
	// HasChildren reports children that would be emitted on expansion.
	HasChildren bool
	Expanded    bool
	// Match is set when an active filter matches the node itself.
	Match  bool
	Marked bool
	// EffectiveMarked is set on marked nodes and on nodes whose children are
	// all effectively marked.
	EffectiveMarked bool
	// Last is set on the last emitted sibling.
	Last bool
}

// FlattenParams are the view parameters of one flatten pass.
type FlattenParams struct {
	Expanded *Expansion
	Filter   Filter
	// Labels feeds the filter. Nil matches against the node id.
	Labels      tree.Labeler
	RootVisible bool
}

// Flatten projects m into a preorder Visible List.
//
// With an active filter a node is emitted when it or any descendant matches.
// Subtree matches are computed for the whole tree first, so collapsed
// branches are evaluated too. A node reached twice or a child that fails
// Contains aborts the pass with a StructuralInconsistency error.
func Flatten(m tree.Model, p FlattenParams) ([]VisibleNode, error) {
	if m == nil {
		return nil, nil
	}
	root, ok := m.Root()
	if !ok {
		return nil, nil
	}
	if !m.Contains(root) {
		return nil, structural(root, "root is not contained in the model")
	}

	f := flattener{
		model:  m,
		params: p,
		seen:   make(map[tree.NodeID]struct{}),
	}
	if p.Filter.Active() {
		f.match = p.Filter.matcher()
		f.self = make(map[tree.NodeID]bool)
		f.subtree = make(map[tree.NodeID]bool)
		if _, err := f.scan(root, make(map[tree.NodeID]struct{})); err != nil {
			return nil, err
		}
	}

	if p.RootVisible {
		if err := f.emit(root, "", false, 0, true); err != nil {
			return nil, err
		}
		return f.out, nil
	}

	f.seen[root] = struct{}{}
	kids, err := f.emittable(root)
	if err != nil {
		return nil, err
	}
	for i, c := range kids {
		if err := f.emit(c, root, true, 0, i == len(kids)-1); err != nil {
			return nil, err
		}
	}
	return f.out, nil
}

type flattener struct {
	model  tree.Model
	params FlattenParams

	match   func(label string) bool
	self    map[tree.NodeID]bool
	subtree map[tree.NodeID]bool

	seen map[tree.NodeID]struct{}
	out  []VisibleNode
}

func (f *flattener) label(id tree.NodeID) string {
	if f.params.Labels == nil {
		return string(id)
	}
	return f.params.Labels.Label(id)
}

// scan memoizes self and subtree matches bottom-up.
func (f *flattener) scan(id tree.NodeID, visited map[tree.NodeID]struct{}) (bool, error) {
	if _, ok := visited[id]; ok {
		return false, structural(id, "node reached twice")
	}
	visited[id] = struct{}{}

	self := f.match(f.label(id))
	found := self
	for _, c := range f.model.Children(id) {
		if !f.model.Contains(c) {
			return false, structural(c, "dangling child of "+string(id))
		}
		ok, err := f.scan(c, visited)
		if err != nil {
			return false, err
		}
		found = found || ok
	}
	f.self[id] = self
	f.subtree[id] = found
	return found, nil
}

// emittable returns the children of id that survive the filter.
func (f *flattener) emittable(id tree.NodeID) ([]tree.NodeID, error) {
	children := f.model.Children(id)
	for _, c := range children {
		if !f.model.Contains(c) {
			return nil, structural(c, "dangling child of "+string(id))
		}
	}
	if f.subtree == nil {
		return children, nil
	}
	out := make([]tree.NodeID, 0, len(children))
	for _, c := range children {
		if f.subtree[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *flattener) emit(id, parent tree.NodeID, hasParent bool, depth int, last bool) error {
	if _, ok := f.seen[id]; ok {
		return structural(id, "node reached twice")
	}
	f.seen[id] = struct{}{}

	kids, err := f.emittable(id)
	if err != nil {
		return err
	}
	open := f.params.Expanded.IsExpanded(id)
	if f.subtree != nil && !f.params.Filter.KeepCollapsed {
		open = true
	}
	open = open && len(kids) > 0

	f.out = append(f.out, VisibleNode{
		ID:          id,
		Parent:      parent,
		HasParent:   hasParent,
		Depth:       depth,
		HasChildren: len(kids) > 0,
		Expanded:    open,
		Match:       f.self != nil && f.self[id],
		Last:        last,
	})
	if !open {
		return nil
	}
	for i, c := range kids {
		if err := f.emit(c, id, true, depth+1, i == len(kids)-1); err != nil {
			return err
		}
	}
	return nil
}
