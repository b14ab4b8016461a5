package view

import (
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/tree"
)

// ExpandPolicy selects the initial Expansion set.
type ExpandPolicy uint8

const (
	ExpandPolicyNone ExpandPolicy = iota
	ExpandPolicyRoot
	ExpandPolicyAll
)

type Options struct {
	// RootVisible emits the traversal root as a depth-0 entry.
	RootVisible bool
	Expand      ExpandPolicy
	// Labels feeds the filter. Nil uses the model when it implements
	// tree.Labeler, else the node id.
	Labels         tree.Labeler
	ViewportHeight int // default: 1
	Filter         Filter

	Logger   logrus.FieldLogger
	OnChange func(Change)
}

// State is the view state over a host-owned tree.
type State struct {
	model tree.Model
	opt   Options
	log   logrus.FieldLogger

	expanded *Expansion
	filter   Filter

	visible []VisibleNode
	index   map[tree.NodeID]int
	stale   bool

	selected tree.NodeID
	hasSel   bool
	offset   int
	height   int

	marks markSet

	version       uint64
	lastChange    Change
	hasLastChange bool
}

// New returns a State over model and computes the first Visible List.
//
// A StructuralInconsistency from the first pass is returned together with a
// usable State holding an empty list.
func New(model tree.Model, opt Options) (*State, error) {
	if opt.Labels == nil {
		if l, ok := model.(tree.Labeler); ok {
			opt.Labels = l
		}
	}
	log := opt.Logger
	if log == nil {
		log = discardLogger()
	}
	s := &State{
		model:    model,
		opt:      opt,
		log:      log,
		expanded: NewExpansion(),
		filter:   opt.Filter,
		index:    map[tree.NodeID]int{},
		height:   max(1, opt.ViewportHeight),
		marks:    newMarkSet(),
	}

	if root, ok := s.root(); ok {
		switch opt.Expand {
		case ExpandPolicyRoot:
			s.expanded.Expand(root)
		case ExpandPolicyAll:
			if err := s.expandSubtree(root, true); err != nil {
				return s, err
			}
		}
	}
	return s, s.refresh()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (s *State) Model() tree.Model { return s.model }

func (s *State) Version() uint64 { return s.version }

// Visible returns a copy of the Visible List.
func (s *State) Visible() []VisibleNode {
	return append([]VisibleNode(nil), s.visible...)
}

func (s *State) Len() int { return len(s.visible) }

// At returns the entry at index i.
func (s *State) At(i int) (VisibleNode, bool) {
	if i < 0 || i >= len(s.visible) {
		return VisibleNode{}, false
	}
	return s.visible[i], true
}

// IndexOf returns the Visible List index of id.
func (s *State) IndexOf(id tree.NodeID) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Stale reports that the last recompute aborted and the Visible List is the
// last good one.
func (s *State) Stale() bool { return s.stale }

// Label returns the display text of id.
func (s *State) Label(id tree.NodeID) string {
	if s.opt.Labels == nil {
		return string(id)
	}
	return s.opt.Labels.Label(id)
}

// SetModel swaps the host tree, keeping expansion, marks and selection by id.
func (s *State) SetModel(model tree.Model) error {
	cb := s.beginChange(ChangeRefresh)
	s.model = model
	if l, ok := model.(tree.Labeler); ok && s.opt.Labels == nil {
		s.opt.Labels = l
	}
	s.version++
	err := s.refresh()
	s.commitChange(cb)
	return err
}

// Refresh recomputes the Visible List after the host mutated its tree.
func (s *State) Refresh() error {
	cb := s.beginChange(ChangeRefresh)
	before := s.visible
	err := s.refresh()
	if err == nil && !slices.Equal(before, s.visible) {
		s.version++
	}
	s.commitChange(cb)
	return err
}

// Invalidate marks the Visible List stale without recomputing it.
// The next Refresh or mutating call rebuilds it.
func (s *State) Invalidate() { s.stale = true }

func (s *State) root() (tree.NodeID, bool) {
	if s.model == nil {
		return "", false
	}
	return s.model.Root()
}

func (s *State) isRoot(id tree.NodeID) bool {
	root, ok := s.root()
	return ok && root == id
}

func (s *State) contains(id tree.NodeID) bool {
	return s.model != nil && s.model.Contains(id)
}

func (s *State) params() FlattenParams {
	return FlattenParams{
		Expanded:    s.expanded,
		Filter:      s.filter,
		Labels:      s.opt.Labels,
		RootVisible: s.opt.RootVisible,
	}
}

// refresh rebuilds the Visible List, prunes marks and re-anchors selection
// and scroll. On a structural error the last good list is kept.
func (s *State) refresh() error {
	list, err := Flatten(s.model, s.params())
	if err != nil {
		s.stale = true
		s.log.WithError(err).Warn("treelist: flatten aborted, keeping last visible list")
		return err
	}

	s.marks.retain(s.contains)

	prev, prevIndex := s.visible, s.index
	index := make(map[tree.NodeID]int, len(list))
	for i := range list {
		index[list[i].ID] = i
	}
	s.visible, s.index, s.stale = list, index, false
	s.syncMarkFlags()

	s.reanchor(prev, prevIndex)
	s.ensureVisible()
	return nil
}

// reanchor keeps the selection on a listed id: the same id, else the nearest
// listed ancestor, else the nearest listed sibling of the node or one of its
// unlisted ancestors, else the previous index clamped, else none.
func (s *State) reanchor(prev []VisibleNode, prevIndex map[tree.NodeID]int) {
	if !s.hasSel {
		return
	}
	if len(s.visible) == 0 {
		s.clearSelection()
		return
	}
	if _, ok := s.index[s.selected]; ok {
		return
	}

	at, ok := prevIndex[s.selected]
	if !ok {
		s.setSelected(0)
		return
	}
	chain := []int{at}
	n := prev[at]
	for n.HasParent {
		if _, ok := s.index[n.Parent]; ok {
			s.selected = n.Parent
			return
		}
		j, ok := prevIndex[n.Parent]
		if !ok {
			break
		}
		chain = append(chain, j)
		n = prev[j]
	}
	for _, i := range chain {
		if id, ok := s.listedSibling(prev, i); ok {
			s.selected = id
			return
		}
	}
	s.setSelected(min(at, len(s.visible)-1))
}

// listedSibling returns the first sibling of prev[at] after it, else the
// last one before it, that is still listed. Siblings share a depth and sit
// between two shallower entries in preorder.
func (s *State) listedSibling(prev []VisibleNode, at int) (tree.NodeID, bool) {
	depth := prev[at].Depth
	for i := at + 1; i < len(prev) && prev[i].Depth >= depth; i++ {
		if prev[i].Depth != depth {
			continue
		}
		if _, ok := s.index[prev[i].ID]; ok {
			return prev[i].ID, true
		}
	}
	for i := at - 1; i >= 0 && prev[i].Depth >= depth; i-- {
		if prev[i].Depth != depth {
			continue
		}
		if _, ok := s.index[prev[i].ID]; ok {
			return prev[i].ID, true
		}
	}
	return "", false
}
