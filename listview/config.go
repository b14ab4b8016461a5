package listview

import (
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

// Config configures the list Model.
type Config struct {
	// View configures the underlying view.State. Its ViewportHeight is
	// managed by SetSize.
	View view.Options

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	Style  Style
	// Glyphs defaults to UnicodeGlyphs when left zero.
	Glyphs     Glyphs
	ShowGuides bool
	ShowHelp   bool

	// Columns render to the right of the tree label. Values defaults to the
	// model when it implements tree.ValueProvider.
	Columns    []Column
	Values     tree.ValueProvider
	ShowHeader bool
	LabelTitle string
	LabelMin   int // default: 10

	// OnChange fires after every effective change of view state or mode.
	OnChange func(ChangeEvent)
	// OnAction sees every dispatched action first. Returning true consumes
	// it, including Quit.
	OnAction  func(view.Action) bool
	Clipboard Clipboard

	Logger logrus.FieldLogger
}
