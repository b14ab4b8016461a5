package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/treelist/internal/grapheme"
	"github.com/iw2rmb/treelist/view"
)

const ellipsis = "…"

func (m Model) View() string {
	var sb strings.Builder
	if m.showHeader() {
		sb.WriteString(m.renderHeader())
		sb.WriteByte('\n')
	}
	sb.WriteString(m.viewport.View())
	body := sb.String()
	if m.showFullHelp {
		body = m.renderHelpOverlay(body)
	}
	return body + "\n" + m.statusLine()
}

// renderHelpOverlay draws the full key help centered over the rows.
func (m Model) renderHelpOverlay(body string) string {
	h := m.help
	h.ShowAll = true
	popup := m.cfg.Style.Popup.Render(h.View(m.cfg.KeyMap))
	return overlay.Composite(popup, body, overlay.Center, overlay.Center, 0, 0)
}

func (m Model) showHeader() bool {
	return m.cfg.ShowHeader && len(m.cfg.Columns) > 0
}

// renderContent renders the rows inside the scroll window.
func (m Model) renderContent() string {
	start, end := m.state.Window()
	if start >= end {
		return ""
	}
	prefixes := m.treePrefixes(end)
	widths := m.columnWidths()
	sel := m.state.SelectedIndex()

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		n, _ := m.state.At(i)
		rows = append(rows, m.renderRow(n, prefixes[i], widths, i == sel))
	}
	return strings.Join(rows, "\n")
}

// columnWidths returns nil when the width is unknown.
func (m Model) columnWidths() []int {
	if m.width <= 0 {
		return nil
	}
	return layoutColumns(m.width, m.cfg.LabelMin, m.cfg.Columns)
}

// treePrefixes returns the indentation or guide string of rows [0, end).
// Guides need the Last flag of every ancestor, which preorder gives us as
// the most recent flag seen at each level.
func (m Model) treePrefixes(end int) []string {
	g := m.cfg.Glyphs
	base := 1
	if m.cfg.View.RootVisible {
		base = 0
	}

	out := make([]string, end)
	var tails []bool
	for i := range end {
		n, _ := m.state.At(i)
		level := n.Depth + base
		if len(tails) <= level {
			tails = append(tails, make([]bool, level+1-len(tails))...)
		}
		tails[level] = n.Last

		if !m.showGuides || level == 0 {
			out[i] = strings.Repeat(g.Indent, n.Depth)
			continue
		}
		var sb strings.Builder
		for l := 1; l < level; l++ {
			if tails[l] {
				sb.WriteString(g.Indent)
			} else {
				sb.WriteString(g.Vert)
			}
		}
		if n.Last {
			sb.WriteString(g.BranchLast)
		} else {
			sb.WriteString(g.Branch)
		}
		out[i] = sb.String()
	}
	return out
}

func (m Model) renderRow(n view.VisibleNode, prefix string, widths []int, selected bool) string {
	g, st := m.cfg.Glyphs, m.cfg.Style

	expander := g.Leaf
	if n.HasChildren {
		expander = g.Collapsed
		if n.Expanded {
			expander = g.Expanded
		}
	}
	head := expander + " "
	if n.EffectiveMarked {
		head += g.Marked + " "
	}
	name := m.state.Label(n.ID)

	if widths != nil {
		room := widths[0] - grapheme.Width(prefix) - grapheme.Width(head)
		name = grapheme.Truncate(name, max(room, 0), ellipsis)
		if len(m.cfg.Columns) > 0 {
			pad := widths[0] - grapheme.Width(prefix+head+name)
			if pad > 0 {
				name += strings.Repeat(" ", pad)
			}
		}
	}

	nameStyle := st.Row
	switch {
	case n.EffectiveMarked:
		nameStyle = st.Marked
	case n.Match:
		nameStyle = st.Match
	}

	var sb strings.Builder
	sb.WriteString(st.Guide.Render(prefix))
	sb.WriteString(head)
	sb.WriteString(nameStyle.Render(name))
	for i, c := range m.cfg.Columns {
		text := ""
		if m.cfg.Values != nil {
			text = m.cfg.Values.Value(n.ID, c.Key)
		}
		if widths != nil {
			text = grapheme.Fit(text, widths[i+1], ellipsis)
		}
		sb.WriteByte(' ')
		sb.WriteString(st.Cell.Render(text))
	}

	if selected {
		return st.Selected.Render(sb.String())
	}
	return sb.String()
}

func (m Model) renderHeader() string {
	widths := m.columnWidths()
	title := m.cfg.LabelTitle
	if widths != nil {
		title = grapheme.Fit(title, widths[0], ellipsis)
	}
	var sb strings.Builder
	sb.WriteString(title)
	for i, c := range m.cfg.Columns {
		t := c.Title
		if widths != nil {
			t = grapheme.Fit(t, widths[i+1], ellipsis)
		}
		sb.WriteByte(' ')
		sb.WriteString(t)
	}
	return m.cfg.Style.Header.Render(sb.String())
}

func (m Model) statusLine() string {
	st := m.cfg.Style
	var line string
	switch mode := m.mode.(type) {
	case Editing:
		line = st.Prompt.Render(mode.Op.String()+": ") + mode.Text
	case Filtering:
		line = st.Prompt.Render("/") + mode.Text
	default:
		if m.cfg.ShowHelp && m.err == nil {
			return m.help.View(m.cfg.KeyMap)
		}
		line = st.Status.Render(m.summary())
	}
	if m.err != nil {
		line += " " + st.Error.Render(m.err.Error())
	}
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func (m Model) summary() string {
	parts := []string{fmt.Sprintf("%d/%d", m.state.SelectedIndex()+1, m.state.Len())}
	if n := len(m.state.Marked()); n > 0 {
		parts = append(parts, fmt.Sprintf("marked: %d", n))
	}
	if f := m.state.Filter(); f.Active() {
		parts = append(parts, "filter: "+f.Pattern)
	}
	if m.state.Stale() {
		parts = append(parts, "stale")
	}
	return strings.Join(parts, "  ")
}
