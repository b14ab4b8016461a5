package view

import "github.com/iw2rmb/treelist/tree"

// ChangeKind identifies what caused a change.
type ChangeKind uint8

const (
	ChangeSelection ChangeKind = iota
	ChangeScroll
	ChangeExpansion
	ChangeFilter
	ChangeMarks
	ChangeStructure
	ChangeRefresh
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelection:
		return "selection"
	case ChangeScroll:
		return "scroll"
	case ChangeExpansion:
		return "expansion"
	case ChangeFilter:
		return "filter"
	case ChangeMarks:
		return "marks"
	case ChangeStructure:
		return "structure"
	case ChangeRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Change is a versioned summary of one effective mutation.
type Change struct {
	Kind           ChangeKind
	VersionBefore  uint64
	VersionAfter   uint64
	SelectedBefore tree.NodeID
	SelectedAfter  tree.NodeID
	OffsetBefore   int
	OffsetAfter    int
	VisibleBefore  int
	VisibleAfter   int
}

type changeBuilder struct {
	kind           ChangeKind
	versionBefore  uint64
	selectedBefore tree.NodeID
	offsetBefore   int
	visibleBefore  int
}

// LastChange returns the most recent effective change.
func (s *State) LastChange() (Change, bool) {
	return s.lastChange, s.hasLastChange
}

func (s *State) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:           kind,
		versionBefore:  s.version,
		selectedBefore: s.selected,
		offsetBefore:   s.offset,
		visibleBefore:  len(s.visible),
	}
}

func (s *State) commitChange(cb changeBuilder) {
	if s.selected != cb.selectedBefore || s.offset != cb.offsetBefore {
		// selection and scroll moves count as mutations on their own
		if s.version == cb.versionBefore {
			s.version++
		}
	}
	if s.version == cb.versionBefore {
		return
	}
	s.lastChange = Change{
		Kind:           cb.kind,
		VersionBefore:  cb.versionBefore,
		VersionAfter:   s.version,
		SelectedBefore: cb.selectedBefore,
		SelectedAfter:  s.selected,
		OffsetBefore:   cb.offsetBefore,
		OffsetAfter:    s.offset,
		VisibleBefore:  cb.visibleBefore,
		VisibleAfter:   len(s.visible),
	}
	s.hasLastChange = true
	if s.opt.OnChange != nil {
		s.opt.OnChange(s.lastChange)
	}
}
