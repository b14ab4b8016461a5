package listview

// Glyphs are the tree-drawing strings of a row.
type Glyphs struct {
	Indent     string
	Branch     string
	BranchLast string
	Vert       string
	Leaf       string
	Expanded   string
	Collapsed  string
	Marked     string
}

func UnicodeGlyphs() Glyphs {
	return Glyphs{
		Indent:     "   ",
		Branch:     "├──",
		BranchLast: "└──",
		Vert:       "│  ",
		Leaf:       "•",
		Expanded:   "▼",
		Collapsed:  "▶",
		Marked:     "✂",
	}
}

func ASCIIGlyphs() Glyphs {
	return Glyphs{
		Indent:     "   ",
		Branch:     "|--",
		BranchLast: "`--",
		Vert:       "|  ",
		Leaf:       "*",
		Expanded:   "v",
		Collapsed:  ">",
		Marked:     "x",
	}
}

func (g Glyphs) isZero() bool { return g == Glyphs{} }
