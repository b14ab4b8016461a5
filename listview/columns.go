package listview

// WidthPolicy controls how a column takes space.
type WidthPolicy uint8

const (
	Flexible WidthPolicy = iota
	Fixed
)

// Column is an extra cell rendered to the right of the tree label.
type Column struct {
	Key   string
	Title string

	Policy WidthPolicy
	// Width is the fixed width, or the ideal width of a flexible column.
	Width int
	Min   int
	// Max caps a flexible column. 0 means Width.
	Max int
}

type widthBounds struct {
	min, ideal, max int
}

func (c Column) bounds() widthBounds {
	if c.Policy == Fixed {
		return widthBounds{min: c.Width, ideal: c.Width, max: c.Width}
	}
	b := widthBounds{min: c.Min, ideal: max(c.Width, c.Min), max: c.Max}
	if b.max == 0 {
		b.max = b.ideal
	}
	b.max = max(b.max, b.ideal)
	return b
}

// distributeWidths gives every column its minimum, then grows columns in
// order toward their ideal width, then toward their maximum.
func distributeWidths(total int, cols []widthBounds) []int {
	widths := make([]int, len(cols))
	remaining := total
	for i, c := range cols {
		widths[i] = c.min
		remaining -= c.min
	}
	if remaining <= 0 {
		return widths
	}
	for i, c := range cols {
		add := min(max(c.ideal-widths[i], 0), remaining)
		widths[i] += add
		remaining -= add
	}
	for i, c := range cols {
		add := min(max(c.max-widths[i], 0), remaining)
		widths[i] += add
		remaining -= add
	}
	return widths
}

// layoutColumns returns the label width followed by one width per column.
// Columns are separated by one space and the label takes what is left.
func layoutColumns(total, labelMin int, cols []Column) []int {
	if len(cols) == 0 {
		return []int{max(total, 0)}
	}
	bounds := make([]widthBounds, 0, len(cols)+1)
	for _, c := range cols {
		bounds = append(bounds, c.bounds())
	}
	avail := total - len(cols)
	bounds = append(bounds, widthBounds{min: labelMin, ideal: labelMin, max: max(avail, labelMin)})

	widths := distributeWidths(avail, bounds)
	label := widths[len(widths)-1]
	return append([]int{label}, widths[:len(widths)-1]...)
}
