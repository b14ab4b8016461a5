package listview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/internal/grapheme"
	"github.com/iw2rmb/treelist/view"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch mode := m.mode.(type) {
	case Editing:
		return m.updateEditing(mode, msg)
	case Filtering:
		return m.updateFiltering(mode, msg)
	default:
		return m.updateBrowsing(msg)
	}
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.ToggleHelp) {
		m.showFullHelp = !m.showFullHelp
		return m, nil
	}
	if m.showFullHelp {
		if key.Matches(msg, km.Cancel) {
			m.showFullHelp = false
		}
		return m, nil
	}
	if key.Matches(msg, km.ToggleGuides) {
		m.showGuides = !m.showGuides
		return m, nil
	}
	a, ok := km.Resolve(msg)
	if !ok {
		return m, nil
	}
	return m.Dispatch(a)
}

// Dispatch runs a as if its key had been pressed while browsing.
func (m Model) Dispatch(a view.Action) (Model, tea.Cmd) {
	m.err = nil
	m.log.WithFields(logrus.Fields{"action": a.String(), "mode": ModeName(m.mode)}).Debug("treelist: dispatch")
	if m.cfg.OnAction != nil && m.cfg.OnAction(a) {
		return m, nil
	}

	switch a {
	case view.Quit:
		return m, tea.Quit
	case view.Add:
		target, ok := m.state.Selected()
		if !ok {
			if target, ok = m.state.Model().Root(); !ok {
				return m, nil
			}
		}
		m.mode = Editing{Op: EditAdd, Target: target}
		return m, nil
	case view.Rename:
		target, ok := m.state.Selected()
		if !ok {
			return m, nil
		}
		m.mode = Editing{Op: EditRename, Target: target, Text: m.state.Label(target)}
		return m, nil
	case view.StartFilter:
		f := m.state.Filter()
		m.mode = Filtering{Text: f.Pattern, Prior: f}
		return m, nil
	case view.ConfirmFilter, view.CancelFilter:
		return m, nil
	}

	marked := false
	if a == view.Mark {
		if id, ok := m.state.Selected(); ok {
			marked = !m.state.IsMarked(id)
		}
	}
	if _, err := m.state.Apply(a); err != nil {
		m.err = err
		return m, nil
	}
	if marked {
		m.copySelectedLabel()
	}
	return m, nil
}

func (m Model) updateEditing(mode Editing, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		m.err = nil
		m.mode = Browsing{}
	case key.Matches(msg, km.Confirm):
		if err := m.commitEdit(mode); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.mode = Browsing{}
	case key.Matches(msg, km.Backspace):
		mode.Text = grapheme.TrimLast(mode.Text)
		m.mode = mode
	default:
		if text, ok := typedText(msg); ok {
			mode.Text += text
			m.mode = mode
		}
	}
	return m, nil
}

func (m Model) commitEdit(mode Editing) error {
	switch mode.Op {
	case EditRename:
		return m.state.Rename(mode.Target, mode.Text)
	default:
		_, err := m.state.Add(mode.Target, view.NodeSpec{Label: mode.Text, Index: -1})
		return err
	}
}

func (m Model) updateFiltering(mode Filtering, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		if m.cfg.OnAction != nil && m.cfg.OnAction(view.CancelFilter) {
			return m, nil
		}
		m.err = m.state.SetFilter(mode.Prior)
		m.mode = Browsing{}
	case key.Matches(msg, km.Confirm):
		if m.cfg.OnAction != nil && m.cfg.OnAction(view.ConfirmFilter) {
			return m, nil
		}
		m.mode = Browsing{}
	case key.Matches(msg, km.Backspace):
		mode.Text = grapheme.TrimLast(mode.Text)
		m.mode = mode
		m.err = m.state.SetPattern(mode.Text)
	default:
		if text, ok := typedText(msg); ok {
			mode.Text += text
			m.mode = mode
			m.err = m.state.SetPattern(mode.Text)
		}
	}
	return m, nil
}

// typedText returns the literal text carried by a key press.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	default:
		return "", false
	}
}

func (m Model) copySelectedLabel() {
	if m.cfg.Clipboard == nil {
		return
	}
	id, ok := m.state.Selected()
	if !ok {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.state.Label(id)); err != nil {
		m.log.WithError(err).Debug("treelist: clipboard write failed")
	}
}
