package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// TrimLast drops the final grapheme cluster of text.
func TrimLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return Join(clusters[:len(clusters)-1])
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += clusterWidth(c)
	}
	return w
}

// Truncate cuts text to at most width cells, ending it with tail when
// something was cut. Clusters are never split.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := clusterWidth(c)
		if used+cw > width-tw {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// Fit truncates text to width and pads it with spaces to exactly width cells.
func Fit(text string, width int, tail string) string {
	text = Truncate(text, width, tail)
	if pad := width - Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w > 2 {
		// multi-rune emoji sequences render in two cells
		w = 2
	}
	return w
}
