package listview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse selects the clicked row and scrolls the selection with the
// wheel. Coordinates are relative to the top-left cell of the component.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if _, ok := m.mode.(Browsing); !ok || m.showFullHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonWheelUp:
		m.err = nil
		m.state.MovePrev()
	case tea.MouseButtonWheelDown:
		m.err = nil
		m.state.MoveNext()
	case tea.MouseButtonLeft:
		i, ok := m.rowAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		n, _ := m.state.At(i)
		m.err = m.state.Select(n.ID)
	}
	return m, nil
}

// rowAt maps component coordinates to a Visible List index.
func (m Model) rowAt(x, y int) (int, bool) {
	if m.showHeader() {
		y--
	}
	if x < 0 || (m.width > 0 && x >= m.width) || y < 0 || y >= m.viewport.Height {
		return 0, false
	}
	i := m.state.Offset() + y
	if i >= m.state.Len() {
		return 0, false
	}
	return i, true
}
