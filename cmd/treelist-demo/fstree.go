package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/listview"
	"github.com/iw2rmb/treelist/tree"
)

var columns = []listview.Column{
	{Key: "kind", Title: "Kind", Policy: listview.Flexible, Min: 3, Width: 5, Max: 8},
	{Key: "size", Title: "Size", Policy: listview.Fixed, Width: 7},
}

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// loadDir mirrors the directory at root into a tree keyed by absolute path.
// depth limits the loaded levels below root; 0 loads everything.
// Unreadable subdirectories are logged and left empty.
func loadDir(root string, depth int, log logrus.FieldLogger) (*tree.Memory, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	m := tree.NewMemory(tree.MemoryOptions{})
	m.SetRoot(tree.NodeID(abs), filepath.Base(abs))
	m.SetValue(tree.NodeID(abs), "kind", "dir")

	var walk func(dir string, level int) error
	walk = func(dir string, level int) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.IsDir() && skippedDirs[e.Name()] {
				continue
			}
			p := filepath.Join(dir, e.Name())
			id := tree.NodeID(p)
			if err := m.Add(tree.NodeID(dir), id, e.Name()); err != nil {
				return err
			}
			if !e.IsDir() {
				m.SetValue(id, "kind", kindOf(e.Name()))
				if fi, err := e.Info(); err == nil {
					m.SetValue(id, "size", humanize.Bytes(uint64(fi.Size())))
				}
				continue
			}
			m.SetValue(id, "kind", "dir")
			if depth > 0 && level+1 >= depth {
				continue
			}
			if err := walk(p, level+1); err != nil {
				log.WithError(err).WithField("dir", p).Warn("treelist-demo: skipping directory")
			}
		}
		return nil
	}
	if err := walk(abs, 0); err != nil {
		return nil, err
	}
	return m, nil
}

func kindOf(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "file"
	}
	return strings.ToLower(ext)
}

// loadedDirs returns every directory of m, for the file watcher.
func loadedDirs(m *tree.Memory) []string {
	root, ok := m.Root()
	if !ok {
		return nil
	}
	var out []string
	var walk func(id tree.NodeID)
	walk = func(id tree.NodeID) {
		if m.Value(id, "kind") != "dir" {
			return
		}
		out = append(out, string(id))
		for _, c := range m.Children(id) {
			walk(c)
		}
	}
	walk(root)
	return out
}
