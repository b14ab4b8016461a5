package listview

import "github.com/charmbracelet/lipgloss"

// Style controls the list rendering.
type Style struct {
	Row      lipgloss.Style
	Selected lipgloss.Style
	Match    lipgloss.Style
	Marked   lipgloss.Style
	Guide    lipgloss.Style
	Cell     lipgloss.Style
	Header   lipgloss.Style

	Status lipgloss.Style
	Prompt lipgloss.Style
	Error  lipgloss.Style
	// Popup frames the full help drawn over the rows.
	Popup lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Row:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		Match:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Marked:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Italic(true),
		Guide:    dim,
		Cell:     dim,
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true).Underline(true),
		Status:   dim,
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Popup:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}
