package view

// Action is a semantic input action.
type Action uint8

const (
	ActionNone Action = iota
	NavigateUp
	NavigateDown
	NavigatePageUp
	NavigatePageDown
	NavigateFirst
	NavigateLast
	NavigateParent
	NavigateChild
	Toggle
	ToggleRecursive
	ExpandAll
	CollapseAll
	Add
	Rename
	Delete
	Detach
	Mark
	Paste
	ReorderUp
	ReorderDown
	StartFilter
	ConfirmFilter
	CancelFilter
	Quit
)

var actionNames = [...]string{
	ActionNone:       "none",
	NavigateUp:       "navigate_up",
	NavigateDown:     "navigate_down",
	NavigatePageUp:   "navigate_page_up",
	NavigatePageDown: "navigate_page_down",
	NavigateFirst:    "navigate_first",
	NavigateLast:     "navigate_last",
	NavigateParent:   "navigate_parent",
	NavigateChild:    "navigate_child",
	Toggle:           "toggle",
	ToggleRecursive:  "toggle_recursive",
	ExpandAll:        "expand_all",
	CollapseAll:      "collapse_all",
	Add:              "add",
	Rename:           "rename",
	Delete:           "delete",
	Detach:           "detach",
	Mark:             "mark",
	Paste:            "paste",
	ReorderUp:        "reorder_up",
	ReorderDown:      "reorder_down",
	StartFilter:      "start_filter",
	ConfirmFilter:    "confirm_filter",
	CancelFilter:     "cancel_filter",
	Quit:             "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Actions returns every action except ActionNone.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames)-1)
	for a := NavigateUp; int(a) < len(actionNames); a++ {
		out = append(out, a)
	}
	return out
}

// ParseAction maps an action name back to its Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && Action(a) != ActionNone {
			return Action(a), true
		}
	}
	return ActionNone, false
}

// Modal reports whether a needs text input from the host before it can run.
func (a Action) Modal() bool {
	switch a {
	case Add, Rename, StartFilter, ConfirmFilter, CancelFilter, Quit:
		return true
	default:
		return false
	}
}

// Event is the outcome of Apply.
type Event uint8

const (
	EventIgnored Event = iota
	EventHandled
	// EventForwarded reports a modal action left to the host.
	EventForwarded
)

func (e Event) String() string {
	switch e {
	case EventHandled:
		return "handled"
	case EventForwarded:
		return "forwarded"
	default:
		return "ignored"
	}
}

// Apply runs a text-free action against the selection.
func (s *State) Apply(a Action) (Event, error) {
	if a.Modal() {
		return EventForwarded, nil
	}

	switch a {
	case NavigateUp:
		return s.handled(s.MovePrev())
	case NavigateDown:
		return s.handled(s.MoveNext())
	case NavigatePageUp:
		return s.handled(s.MovePage(-1))
	case NavigatePageDown:
		return s.handled(s.MovePage(1))
	case NavigateFirst:
		return s.handled(s.MoveFirst())
	case NavigateLast:
		return s.handled(s.MoveLast())
	case NavigateParent:
		return s.handled(s.MoveParent())
	case NavigateChild:
		return s.handled(s.MoveChild())
	case ExpandAll:
		return EventHandled, s.ExpandAll()
	case CollapseAll:
		return EventHandled, s.CollapseAll()
	}

	n, ok := s.SelectedNode()
	if !ok {
		return EventIgnored, nil
	}
	var err error
	switch a {
	case Toggle:
		if !n.HasChildren {
			return EventIgnored, nil
		}
		err = s.Toggle(n.ID)
	case ToggleRecursive:
		err = s.ToggleRecursive(n.ID)
	case Delete:
		err = s.Delete(n.ID)
	case Detach:
		err = s.Detach(n.ID)
	case Mark:
		err = s.ToggleMark(n.ID)
	case Paste:
		err = s.Paste(n.ID)
	case ReorderUp:
		err = s.Reorder(n.ID, -1)
	case ReorderDown:
		err = s.Reorder(n.ID, 1)
	default:
		return EventIgnored, nil
	}
	if err != nil {
		return EventIgnored, err
	}
	return EventHandled, nil
}

// handled maps navigation results. Saturated moves on a non-empty list are
// still handled.
func (s *State) handled(bool) (Event, error) {
	if len(s.visible) == 0 {
		return EventIgnored, nil
	}
	return EventHandled, nil
}
