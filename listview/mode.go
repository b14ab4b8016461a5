package listview

import (
	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

// Mode is the input mode of the list. It is one of Browsing, Editing or
// Filtering.
type Mode interface {
	mode()
}

// Browsing dispatches keys through the KeyMap.
type Browsing struct{}

// EditOp is the edit an Editing mode commits.
type EditOp uint8

const (
	EditAdd EditOp = iota
	EditRename
)

func (op EditOp) String() string {
	if op == EditRename {
		return "rename"
	}
	return "add"
}

// Editing buffers a label for Add or Rename.
type Editing struct {
	Op EditOp
	// Target is the parent for EditAdd and the renamed node for EditRename.
	Target tree.NodeID
	Text   string
}

// Filtering buffers a live filter pattern.
type Filtering struct {
	Text  string
	Prior view.Filter
}

func (Browsing) mode()  {}
func (Editing) mode()   {}
func (Filtering) mode() {}

// ModeName returns a short name for status lines and logs.
func ModeName(m Mode) string {
	switch m.(type) {
	case Editing:
		return "editing"
	case Filtering:
		return "filtering"
	default:
		return "browsing"
	}
}
