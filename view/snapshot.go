package view

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/iw2rmb/treelist/tree"
)

// SnapshotVersion is the current on-disk snapshot format.
const SnapshotVersion = 1

// Snapshot is the persistable part of a State, keyed by node id.
type Snapshot struct {
	Version       int           `json:"version"`
	Expanded      []tree.NodeID `json:"expanded"`
	Marked        []tree.NodeID `json:"marked,omitempty"`
	Selected      tree.NodeID   `json:"selected,omitempty"`
	Offset        int           `json:"offset"`
	Filter        string        `json:"filter,omitempty"`
	CaseSensitive bool          `json:"case_sensitive,omitempty"`
}

// Snapshot captures expansion, marks, selection, scroll and filter pattern.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Version:       SnapshotVersion,
		Expanded:      s.expanded.IDs(),
		Marked:        s.Marked(),
		Selected:      s.selected,
		Offset:        s.offset,
		Filter:        s.filter.Pattern,
		CaseSensitive: s.filter.CaseSensitive,
	}
}

// Restore applies snap. Ids the model no longer contains are dropped, and
// the selection falls back to none when its node is not visible.
func (s *State) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("restore snapshot: unsupported version %d", snap.Version)
	}

	cb := s.beginChange(ChangeRefresh)
	savedExpanded, savedFilter := s.expanded, s.filter
	s.expanded = NewExpansion()
	for _, id := range snap.Expanded {
		if s.contains(id) {
			s.expanded.Expand(id)
		}
	}
	s.filter.Pattern = snap.Filter
	s.filter.CaseSensitive = snap.CaseSensitive

	savedMarks := s.marks
	s.marks = newMarkSet()
	for _, id := range snap.Marked {
		if s.checkMarkable("restore", id) == nil {
			s.marks.add(id)
		}
	}

	if err := s.refresh(); err != nil {
		s.expanded, s.filter, s.marks = savedExpanded, savedFilter, savedMarks
		return err
	}

	s.clearSelection()
	if i, ok := s.index[snap.Selected]; ok && snap.Selected != "" {
		s.setSelected(i)
	}
	s.offset = max(0, snap.Offset)
	s.ensureVisible()
	s.version++
	s.commitChange(cb)
	return nil
}

// WriteSnapshot encodes snap as indented JSON.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", snap.Version)
	}
	return snap, nil
}
