package tree

// NodeID is an opaque, stable node handle.
type NodeID string

// Model is the minimal read capability required by the view.
//
// The hierarchy must be a proper tree: acyclic, single-parent, with ids that
// stay stable between frames. Children must return the same ordered slice for
// the duration of one flatten pass.
type Model interface {
	// Root returns the traversal root, or false when the tree is empty.
	Root() (NodeID, bool)
	// Children returns the ordered children of id.
	Children(id NodeID) []NodeID
	// Contains reports whether id is known to the model.
	Contains(id NodeID) bool
}

// Editor is the mutation capability used by the edit processor.
//
// Primitives are called only after the view has validated the whole
// operation, so implementations may assume their arguments are consistent.
type Editor interface {
	Model

	// Parent returns the parent of an attached node.
	Parent(id NodeID) (NodeID, bool)
	// Create stores a new, unattached node and returns its id.
	Create(label string) NodeID
	// SetLabel replaces the label of id.
	SetLabel(id NodeID, label string)
	// Attach inserts child under parent at index (0 <= index <= len(children)).
	Attach(parent, child NodeID, index int)
	// Detach removes child from its parent. The node stays in storage.
	Detach(child NodeID)
	// Remove deletes id and its whole subtree from storage.
	Remove(id NodeID)
}

// Labeler provides the display text of a node.
type Labeler interface {
	Label(id NodeID) string
}

// ValueProvider provides per-column cell text for multi-column rows.
type ValueProvider interface {
	Value(id NodeID, column string) string
}

// LabelFunc adapts a function to Labeler.
type LabelFunc func(id NodeID) string

func (f LabelFunc) Label(id NodeID) string { return f(id) }

// ValueFunc adapts a function to ValueProvider.
type ValueFunc func(id NodeID, column string) string

func (f ValueFunc) Value(id NodeID, column string) string { return f(id, column) }
