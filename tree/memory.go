package tree

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

type memNode struct {
	label    string
	parent   NodeID
	attached bool
	children []NodeID
	values   map[string]string
}

// Memory is a map-backed Editor with labels and column values.
type Memory struct {
	root    NodeID
	hasRoot bool
	nodes   map[NodeID]*memNode
	newID   func() NodeID
}

// MemoryOptions configures a Memory tree.
type MemoryOptions struct {
	// NewID generates ids for nodes created through Create.
	// Default: random UUIDs.
	NewID func() NodeID
}

// NewMemory returns an empty tree. Use SetRoot and Add to populate it.
func NewMemory(opt MemoryOptions) *Memory {
	if opt.NewID == nil {
		opt.NewID = func() NodeID { return NodeID(uuid.NewString()) }
	}
	return &Memory{
		nodes: make(map[NodeID]*memNode),
		newID: opt.NewID,
	}
}

// SetRoot installs id as the traversal root, creating it when missing.
func (m *Memory) SetRoot(id NodeID, label string) {
	n, ok := m.nodes[id]
	if !ok {
		n = &memNode{}
		m.nodes[id] = n
	}
	n.label = label
	n.attached = true
	m.root = id
	m.hasRoot = true
}

// Add appends a new node id under parent.
func (m *Memory) Add(parent, id NodeID, label string) error {
	if _, ok := m.nodes[parent]; !ok {
		return fmt.Errorf("tree: parent %q not found", parent)
	}
	if _, ok := m.nodes[id]; ok {
		return fmt.Errorf("tree: node %q already exists", id)
	}
	m.nodes[id] = &memNode{label: label}
	m.Attach(parent, id, len(m.nodes[parent].children))
	return nil
}

// SetValue stores the cell text of id for column.
func (m *Memory) SetValue(id NodeID, column, value string) {
	n, ok := m.nodes[id]
	if !ok {
		return
	}
	if n.values == nil {
		n.values = make(map[string]string)
	}
	n.values[column] = value
}

// Len returns the number of stored nodes, attached or not.
func (m *Memory) Len() int { return len(m.nodes) }

func (m *Memory) Root() (NodeID, bool) { return m.root, m.hasRoot }

func (m *Memory) Children(id NodeID) []NodeID {
	n, ok := m.nodes[id]
	if !ok {
		return nil
	}
	return n.children
}

func (m *Memory) Contains(id NodeID) bool {
	_, ok := m.nodes[id]
	return ok
}

func (m *Memory) Label(id NodeID) string {
	n, ok := m.nodes[id]
	if !ok {
		return ""
	}
	return n.label
}

func (m *Memory) Value(id NodeID, column string) string {
	n, ok := m.nodes[id]
	if !ok {
		return ""
	}
	return n.values[column]
}

func (m *Memory) Parent(id NodeID) (NodeID, bool) {
	n, ok := m.nodes[id]
	if !ok || !n.attached || id == m.root {
		return "", false
	}
	return n.parent, true
}

func (m *Memory) Create(label string) NodeID {
	id := m.newID()
	for m.Contains(id) {
		id = m.newID()
	}
	m.nodes[id] = &memNode{label: label}
	return id
}

func (m *Memory) SetLabel(id NodeID, label string) {
	if n, ok := m.nodes[id]; ok {
		n.label = label
	}
}

func (m *Memory) Attach(parent, child NodeID, index int) {
	p, ok := m.nodes[parent]
	c, ok2 := m.nodes[child]
	if !ok || !ok2 {
		return
	}
	if c.attached {
		m.Detach(child)
	}
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent
	c.attached = true
}

func (m *Memory) Detach(child NodeID) {
	c, ok := m.nodes[child]
	if !ok || !c.attached || child == m.root {
		return
	}
	if p, ok := m.nodes[c.parent]; ok {
		p.children = slices.DeleteFunc(p.children, func(id NodeID) bool { return id == child })
	}
	c.parent = ""
	c.attached = false
}

func (m *Memory) Remove(id NodeID) {
	if _, ok := m.nodes[id]; !ok {
		return
	}
	m.Detach(id)
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := m.nodes[cur]
		if !ok {
			continue
		}
		stack = append(stack, n.children...)
		delete(m.nodes, cur)
	}
	if id == m.root {
		m.root = ""
		m.hasRoot = false
	}
}
