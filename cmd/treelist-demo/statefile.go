package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/iw2rmb/treelist"
	"github.com/iw2rmb/treelist/view"
)

// stateFile is the on-disk form of a saved session.
type stateFile struct {
	Module string        `json:"module"`
	Root   string        `json:"root"`
	View   view.Snapshot `json:"view"`
}

// loadState reads a saved session. A missing file, one written by an
// incompatible release or one saved for another root yields ok == false.
func loadState(path, root string) (view.Snapshot, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return view.Snapshot{}, false, nil
	}
	if err != nil {
		return view.Snapshot{}, false, err
	}
	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return view.Snapshot{}, false, fmt.Errorf("decode %s: %w", path, err)
	}
	if !treelist.Compatible(f.Module) || f.Root != root || f.View.Version != view.SnapshotVersion {
		return view.Snapshot{}, false, nil
	}
	return f.View, true, nil
}

// saveState writes the session atomically next to path.
func saveState(path, root string, snap view.Snapshot) error {
	data, err := json.MarshalIndent(stateFile{Module: treelist.Version(), Root: root, View: snap}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
