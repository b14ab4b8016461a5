package listview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/treelist/view"
)

// Profile selects the navigation keys of a KeyMap.
type Profile uint8

const (
	// ProfileDefault binds both arrows and h/j/k/l.
	ProfileDefault Profile = iota
	ProfileVim
	ProfileArrows
)

func (p Profile) String() string {
	switch p {
	case ProfileVim:
		return "vim"
	case ProfileArrows:
		return "arrows"
	default:
		return "default"
	}
}

// ParseProfile maps a profile name to its Profile.
func ParseProfile(name string) (Profile, bool) {
	for _, p := range []Profile{ProfileDefault, ProfileVim, ProfileArrows} {
		if p.String() == name {
			return p, true
		}
	}
	return ProfileDefault, false
}

// KeyMap defines the list key bindings.
//
// Browse bindings resolve to view actions. Confirm, Cancel and Backspace are
// read only while editing or filtering.
type KeyMap struct {
	Up, Down         key.Binding
	PageUp, PageDown key.Binding
	First, Last      key.Binding
	Parent, Child    key.Binding

	Toggle, ToggleRecursive key.Binding
	ExpandAll, CollapseAll  key.Binding

	Add, Rename               key.Binding
	Delete, Detach            key.Binding
	Mark, Paste               key.Binding
	ReorderUp, ReorderDown    key.Binding
	StartFilter, ToggleGuides key.Binding
	ToggleHelp, Quit          key.Binding

	Confirm, Cancel, Backspace key.Binding
}

func DefaultKeyMap() KeyMap { return KeyMapFor(ProfileDefault) }

// KeyMapFor returns the bindings of profile.
func KeyMapFor(p Profile) KeyMap {
	km := KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),

		Toggle:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		ToggleRecursive: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle subtree")),
		ExpandAll:       key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "expand all")),
		CollapseAll:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "collapse all")),

		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add child")),
		Rename: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		// bubbletea reports no shift+delete, so S is the portable delete key.
		Delete:       key.NewBinding(key.WithKeys("S", "D"), key.WithHelp("S", "delete")),
		Detach:       key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "cut")),
		Mark:         key.NewBinding(key.WithKeys("y", "m"), key.WithHelp("y", "mark")),
		Paste:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		ReorderUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "move up")),
		ReorderDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "move down")),
		StartFilter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ToggleGuides: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "guides")),
		ToggleHelp:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
	}

	switch p {
	case ProfileVim:
		km.Up = key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up"))
		km.Down = key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down"))
		km.Parent = key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "parent"))
		km.Child = key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "child"))
		km.PageUp = key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "page up"))
		km.PageDown = key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "page down"))
		km.ReorderUp = key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up"))
		km.ReorderDown = key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down"))
	case ProfileArrows:
		km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
		km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
		km.Parent = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "parent"))
		km.Child = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "child"))
	default:
		km.Up = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
		km.Down = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
		km.Parent = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "parent"))
		km.Child = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "child"))
	}
	return km
}

type keyEntry struct {
	name    string
	action  view.Action
	binding *key.Binding
}

// entries lists every binding with its configuration name. Browse entries
// come first in resolution order.
func (km *KeyMap) entries() []keyEntry {
	return []keyEntry{
		{view.NavigateUp.String(), view.NavigateUp, &km.Up},
		{view.NavigateDown.String(), view.NavigateDown, &km.Down},
		{view.NavigatePageUp.String(), view.NavigatePageUp, &km.PageUp},
		{view.NavigatePageDown.String(), view.NavigatePageDown, &km.PageDown},
		{view.NavigateFirst.String(), view.NavigateFirst, &km.First},
		{view.NavigateLast.String(), view.NavigateLast, &km.Last},
		{view.NavigateParent.String(), view.NavigateParent, &km.Parent},
		{view.NavigateChild.String(), view.NavigateChild, &km.Child},
		{view.ReorderUp.String(), view.ReorderUp, &km.ReorderUp},
		{view.ReorderDown.String(), view.ReorderDown, &km.ReorderDown},
		{view.Toggle.String(), view.Toggle, &km.Toggle},
		{view.ToggleRecursive.String(), view.ToggleRecursive, &km.ToggleRecursive},
		{view.ExpandAll.String(), view.ExpandAll, &km.ExpandAll},
		{view.CollapseAll.String(), view.CollapseAll, &km.CollapseAll},
		{view.Add.String(), view.Add, &km.Add},
		{view.Rename.String(), view.Rename, &km.Rename},
		{view.Delete.String(), view.Delete, &km.Delete},
		{view.Detach.String(), view.Detach, &km.Detach},
		{view.Mark.String(), view.Mark, &km.Mark},
		{view.Paste.String(), view.Paste, &km.Paste},
		{view.StartFilter.String(), view.StartFilter, &km.StartFilter},
		{"toggle_guides", view.ActionNone, &km.ToggleGuides},
		{"toggle_help", view.ActionNone, &km.ToggleHelp},
		{view.Quit.String(), view.Quit, &km.Quit},

		{view.ConfirmFilter.String(), view.ConfirmFilter, &km.Confirm},
		{view.CancelFilter.String(), view.CancelFilter, &km.Cancel},
		{"backspace", view.ActionNone, &km.Backspace},
	}
}

// lookup returns the binding configured under name.
func (km *KeyMap) lookup(name string) (*key.Binding, bool) {
	for _, e := range km.entries() {
		if e.name == name {
			return e.binding, true
		}
	}
	switch name {
	case "confirm":
		return &km.Confirm, true
	case "cancel":
		return &km.Cancel, true
	}
	return nil, false
}

// Resolve maps a browsing key press to its action.
func (km KeyMap) Resolve(msg tea.KeyMsg) (view.Action, bool) {
	for _, e := range km.entries() {
		if e.action == view.ConfirmFilter {
			break
		}
		if e.action != view.ActionNone && key.Matches(msg, *e.binding) {
			return e.action, true
		}
	}
	return view.ActionNone, false
}

// ShortHelp returns the bindings shown in a one-line help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Toggle, km.Add, km.Rename, km.Detach, km.Paste, km.StartFilter, km.ToggleHelp, km.Quit}
}

// FullHelp returns every browse binding grouped by concern.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.PageUp, km.PageDown, km.First, km.Last, km.Parent, km.Child},
		{km.Toggle, km.ToggleRecursive, km.ExpandAll, km.CollapseAll, km.ToggleGuides},
		{km.Add, km.Rename, km.Delete, km.Detach, km.Mark, km.Paste, km.ReorderUp, km.ReorderDown},
		{km.StartFilter, km.ToggleHelp, km.Quit},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0 && len(km.Quit.Keys()) == 0
}
