package listview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/treelist/tree"
)

func sample(t *testing.T) *tree.Memory {
	t.Helper()
	m := tree.NewMemory(tree.MemoryOptions{})
	m.SetRoot("root", "root")
	for _, n := range []struct{ parent, id tree.NodeID }{
		{"root", "A"}, {"A", "A1"}, {"A", "A2"}, {"root", "B"},
	} {
		require.NoError(t, m.Add(n.parent, n.id, string(n.id)))
	}
	return m
}

func newList(t *testing.T, m tree.Model, cfg Config) Model {
	t.Helper()
	if cfg.Glyphs.isZero() {
		cfg.Glyphs = ASCIIGlyphs()
	}
	l, err := New(m, cfg)
	require.NoError(t, err)
	return l.SetSize(40, 10)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// press feeds keys one by one and returns the command of the last one.
func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func visibleIDs(m Model) []tree.NodeID {
	var out []tree.NodeID
	for _, n := range m.State().Visible() {
		out = append(out, n.ID)
	}
	return out
}

func selected(m Model) tree.NodeID {
	id, _ := m.State().Selected()
	return id
}

type memClipboard struct {
	text   string
	writes int
}

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	c.writes++
	return nil
}
