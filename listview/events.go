package listview

import (
	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

// ChangeEvent reports an effective change of the view state or the mode.
type ChangeEvent struct {
	Version  uint64
	Selected tree.NodeID
	// HasSelection is false when the list is empty or nothing is selected.
	HasSelection bool
	Mode         Mode
	Change       view.Change
}

func buildChangeEvent(s *view.State, mode Mode) ChangeEvent {
	ev := ChangeEvent{Version: s.Version(), Mode: mode}
	ev.Selected, ev.HasSelection = s.Selected()
	ev.Change, _ = s.LastChange()
	return ev
}
