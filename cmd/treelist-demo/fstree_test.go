package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/treelist/tree"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "hello")
	writeFile(t, filepath.Join(dir, "src", "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "src", "deep", "x.txt"), "x")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref")
	return dir
}

func labels(m *tree.Memory, ids []tree.NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.Label(id))
	}
	return out
}

func TestLoadDir_MirrorsDirectory(t *testing.T) {
	dir := fixture(t)
	m, err := loadDir(dir, 0, quietLogger())
	require.NoError(t, err)

	root, ok := m.Root()
	require.True(t, ok)
	assert.Equal(t, filepath.Base(dir), m.Label(root))
	assert.Equal(t, []string{"README.md", "src"}, labels(m, m.Children(root)), ".git is skipped")

	src := tree.NodeID(filepath.Join(dir, "src"))
	assert.Equal(t, []string{"deep", "main.go"}, labels(m, m.Children(src)))
	assert.Equal(t, "dir", m.Value(src, "kind"))

	readme := tree.NodeID(filepath.Join(dir, "README.md"))
	assert.Equal(t, "md", m.Value(readme, "kind"))
	assert.Equal(t, "5 B", m.Value(readme, "size"))
}

func TestLoadDir_DepthLimit(t *testing.T) {
	dir := fixture(t)
	m, err := loadDir(dir, 1, quietLogger())
	require.NoError(t, err)

	src := tree.NodeID(filepath.Join(dir, "src"))
	assert.True(t, m.Contains(src))
	assert.Empty(t, m.Children(src))
	assert.Equal(t, []string{dir, string(src)}, loadedDirs(m))
}

func TestLoadDir_RejectsFiles(t *testing.T) {
	dir := fixture(t)
	_, err := loadDir(filepath.Join(dir, "README.md"), 0, quietLogger())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not a directory"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "go", kindOf("main.go"))
	assert.Equal(t, "png", kindOf("A.PNG"))
	assert.Equal(t, "file", kindOf("Makefile"))
}
