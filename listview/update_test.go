package listview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

func TestUpdate_NavigateAndToggle(t *testing.T) {
	m := newList(t, sample(t), Config{View: view.Options{Expand: view.ExpandPolicyAll}})

	m, _ = press(m, keyOf(tea.KeyDown))
	assert.Equal(t, tree.NodeID("A"), selected(m))

	m, _ = press(m, keyOf(tea.KeyEnter))
	assert.Equal(t, []tree.NodeID{"A", "B"}, visibleIDs(m))

	m, _ = press(m, runes("j"))
	assert.Equal(t, tree.NodeID("B"), selected(m))
	m, _ = press(m, runes("k"), runes("l"))
	assert.Equal(t, tree.NodeID("A"), selected(m), "child on a collapsed node expands it in place")
	assert.Equal(t, []tree.NodeID{"A", "A1", "A2", "B"}, visibleIDs(m))

	m, _ = press(m, runes("l"))
	assert.Equal(t, tree.NodeID("A1"), selected(m))
	m, _ = press(m, runes("h"))
	assert.Equal(t, tree.NodeID("A"), selected(m))
}

func TestUpdate_ToggleRecursiveAndBulk(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, runes("*"))
	assert.Equal(t, []tree.NodeID{"A", "A1", "A2", "B"}, visibleIDs(m))
	m, _ = press(m, runes("-"))
	assert.Equal(t, []tree.NodeID{"A", "B"}, visibleIDs(m))

	m, _ = press(m, keyOf(tea.KeyDown), keyOf(tea.KeySpace))
	assert.Equal(t, []tree.NodeID{"A", "A1", "A2", "B"}, visibleIDs(m))
}

func TestUpdate_AddCommitsChild(t *testing.T) {
	mem := sample(t)
	m := newList(t, mem, Config{View: view.Options{Expand: view.ExpandPolicyAll}})

	m, _ = press(m, keyOf(tea.KeyDown), runes("a"))
	require.Equal(t, Editing{Op: EditAdd, Target: "A"}, m.Mode())

	m, _ = press(m, runes("n"), runes("e"), runes("w"), keyOf(tea.KeyBackspace))
	require.Equal(t, "ne", m.Mode().(Editing).Text)

	m, _ = press(m, keyOf(tea.KeyEnter))
	require.IsType(t, Browsing{}, m.Mode())
	require.NoError(t, m.Err())

	kids := mem.Children("A")
	require.Len(t, kids, 3)
	assert.Equal(t, kids[2], selected(m))
	assert.Equal(t, "ne", m.State().Label(kids[2]))
}

func TestUpdate_AddWithoutSelectionTargetsRoot(t *testing.T) {
	mem := sample(t)
	m := newList(t, mem, Config{})

	m, _ = press(m, runes("+"), runes("C"), keyOf(tea.KeyEnter))
	require.NoError(t, m.Err())
	assert.Len(t, mem.Children("root"), 3)
}

func TestUpdate_EmptyEditStaysInEditing(t *testing.T) {
	mem := sample(t)
	m := newList(t, mem, Config{})

	m, _ = press(m, keyOf(tea.KeyDown), runes("a"), keyOf(tea.KeyEnter))
	require.IsType(t, Editing{}, m.Mode())
	require.ErrorIs(t, m.Err(), view.ErrInvalidOperation)
	assert.Len(t, mem.Children("A"), 2)

	m, _ = press(m, keyOf(tea.KeyEsc))
	require.IsType(t, Browsing{}, m.Mode())
	assert.NoError(t, m.Err())
}

func TestUpdate_RenameStartsFromCurrentLabel(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, keyOf(tea.KeyDown), runes("e"))
	require.Equal(t, Editing{Op: EditRename, Target: "A", Text: "A"}, m.Mode())

	m, _ = press(m, keyOf(tea.KeyBackspace), runes("Z"), keyOf(tea.KeySpace), runes("z"), keyOf(tea.KeyEnter))
	require.NoError(t, m.Err())
	assert.Equal(t, "Z z", m.State().Label("A"))
}

func TestUpdate_RenameCancelKeepsLabel(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, keyOf(tea.KeyDown), runes("e"), runes("x"), keyOf(tea.KeyEsc))
	require.IsType(t, Browsing{}, m.Mode())
	assert.Equal(t, "A", m.State().Label("A"))
}

func TestUpdate_FilterIsLiveAndCancelRestores(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, runes("/"))
	require.IsType(t, Filtering{}, m.Mode())

	m, _ = press(m, runes("a"), runes("1"))
	assert.Equal(t, []tree.NodeID{"A", "A1"}, visibleIDs(m))
	assert.Equal(t, "a1", m.State().Filter().Pattern)

	m, _ = press(m, keyOf(tea.KeyBackspace))
	assert.Equal(t, "a", m.State().Filter().Pattern)

	m, _ = press(m, keyOf(tea.KeyEsc))
	require.IsType(t, Browsing{}, m.Mode())
	assert.False(t, m.State().Filter().Active())
	assert.Equal(t, []tree.NodeID{"A", "B"}, visibleIDs(m))
}

func TestUpdate_FilterConfirmKeepsPattern(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, runes("/"), runes("b"), keyOf(tea.KeyEnter))
	require.IsType(t, Browsing{}, m.Mode())
	assert.Equal(t, "b", m.State().Filter().Pattern)
	assert.Equal(t, []tree.NodeID{"B"}, visibleIDs(m))

	// reopening starts from the active pattern
	m, _ = press(m, runes("/"))
	assert.Equal(t, "b", m.Mode().(Filtering).Text)
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := newList(t, sample(t), Config{})

	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_OnActionConsumes(t *testing.T) {
	var seen []view.Action
	mem := sample(t)
	m := newList(t, mem, Config{
		View: view.Options{Expand: view.ExpandPolicyAll},
		OnAction: func(a view.Action) bool {
			seen = append(seen, a)
			return a == view.Quit || a == view.Detach
		},
	})

	m, cmd := press(m, runes("q"))
	assert.Nil(t, cmd)

	m, _ = press(m, keyOf(tea.KeyDown), runes("d"))
	assert.Equal(t, tree.NodeID("root"), mustParent(t, mem, "A"))
	assert.Equal(t, []view.Action{view.Quit, view.NavigateDown, view.Detach}, seen)
	assert.Empty(t, m.State().Marked())
}

func mustParent(t *testing.T, mem *tree.Memory, id tree.NodeID) tree.NodeID {
	t.Helper()
	p, ok := mem.Parent(id)
	require.True(t, ok, "%s has no parent", id)
	return p
}

func TestUpdate_MarkCopiesLabel(t *testing.T) {
	clip := &memClipboard{}
	m := newList(t, sample(t), Config{Clipboard: clip})

	m, _ = press(m, keyOf(tea.KeyDown), runes("y"))
	assert.Equal(t, []tree.NodeID{"A"}, m.State().Marked())
	assert.Equal(t, "A", clip.text)

	m, _ = press(m, runes("y"))
	assert.Empty(t, m.State().Marked())
	assert.Equal(t, 1, clip.writes, "unmarking must not copy")
}

func TestUpdate_DetachThenPaste(t *testing.T) {
	mem := sample(t)
	m := newList(t, mem, Config{View: view.Options{Expand: view.ExpandPolicyAll}})

	m, _ = press(m, keyOf(tea.KeyDown), keyOf(tea.KeyDown), keyOf(tea.KeyDown), runes("d"))
	require.NoError(t, m.Err())
	assert.Equal(t, []tree.NodeID{"A", "A1", "B"}, visibleIDs(m))
	assert.Equal(t, tree.NodeID("A"), selected(m))

	m, _ = press(m, keyOf(tea.KeyEnd), runes("p"))
	require.NoError(t, m.Err())
	assert.Equal(t, []tree.NodeID{"A2"}, mem.Children("B"))
	assert.Equal(t, tree.NodeID("A2"), selected(m))
}

func TestUpdate_PasteWithoutMarksReportsError(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = press(m, keyOf(tea.KeyDown), runes("p"))
	require.ErrorIs(t, m.Err(), view.ErrInvalidOperation)
	assert.Contains(t, m.View(), "paste:")

	m, _ = press(m, runes("j"))
	assert.NoError(t, m.Err())
}

func TestUpdate_ReorderAndDelete(t *testing.T) {
	mem := sample(t)
	m := newList(t, mem, Config{})

	m, _ = press(m, keyOf(tea.KeyDown), keyOf(tea.KeyShiftDown))
	require.NoError(t, m.Err())
	assert.Equal(t, []tree.NodeID{"B", "A"}, mem.Children("root"))
	assert.Equal(t, tree.NodeID("A"), selected(m))

	m, _ = press(m, runes("S"))
	require.NoError(t, m.Err())
	assert.False(t, mem.Contains("A"))
	assert.False(t, mem.Contains("A1"))
	assert.Equal(t, []tree.NodeID{"B"}, visibleIDs(m))
}

func TestUpdate_ToggleGuides(t *testing.T) {
	m := newList(t, sample(t), Config{})
	require.False(t, m.showGuides)

	m, _ = press(m, runes("g"))
	assert.True(t, m.showGuides)
	m, _ = press(m, runes("g"))
	assert.False(t, m.showGuides)
}

func TestUpdate_OnChangeFiresPerEffectiveChange(t *testing.T) {
	var events []ChangeEvent
	m := newList(t, sample(t), Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	events = nil

	m, _ = press(m, keyOf(tea.KeyDown))
	require.Len(t, events, 1)
	assert.True(t, events[0].HasSelection)
	assert.Equal(t, tree.NodeID("A"), events[0].Selected)
	assert.Equal(t, view.ChangeSelection, events[0].Change.Kind)

	m, _ = press(m, runes("x"), keyOf(tea.KeyUp))
	assert.Len(t, events, 1, "unbound and saturated keys change nothing")

	m, _ = press(m, runes("/"))
	require.Len(t, events, 2)
	assert.IsType(t, Filtering{}, events[1].Mode)
	assert.Equal(t, m.State().Version(), events[1].Version)
}

func TestUpdate_PicksUpHostMutations(t *testing.T) {
	var events int
	m := newList(t, sample(t), Config{OnChange: func(ChangeEvent) { events++ }})
	events = 0

	require.NoError(t, m.State().ExpandAll())
	m, _ = m.Update(nil)
	assert.Equal(t, 1, events)
	assert.Contains(t, m.renderContent(), "A1")
}

func TestUpdate_WindowSizeSetsViewport(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 3})
	assert.Equal(t, 2, m.State().ViewportHeight())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 0})
	assert.Equal(t, 1, m.State().ViewportHeight())
	assert.Equal(t, m.State().ViewportHeight(), m.viewport.Height)
}

func TestUpdate_ShortWindowKeepsViewportAndStateInStep(t *testing.T) {
	m := newList(t, sample(t), Config{
		View:       view.Options{Expand: view.ExpandPolicyAll},
		Columns:    []Column{{Key: "size", Title: "Size", Policy: Fixed, Width: 4}},
		ShowHeader: true,
	})

	for _, h := range []int{0, 1, 2, 3, 5} {
		m = m.SetSize(30, h)
		assert.Equal(t, m.State().ViewportHeight(), m.viewport.Height, "height %d", h)
	}
	m = m.SetSize(30, 2)
	m, _ = press(m, keyOf(tea.KeyEnd))
	start, end := m.State().Window()
	assert.Equal(t, 1, end-start)
	assert.Len(t, strings.Split(m.viewport.View(), "\n"), 1)
}

func TestUpdate_MouseClickSelectsRow(t *testing.T) {
	m := newList(t, sample(t), Config{View: view.Options{Expand: view.ExpandPolicyAll}})

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("A2"), selected(m))

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("A2"), selected(m), "release is ignored")

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("A2"), selected(m), "below the last row")
}

func TestUpdate_MouseClickHonorsHeaderAndOffset(t *testing.T) {
	m := newList(t, sample(t), Config{
		View:       view.Options{Expand: view.ExpandPolicyAll},
		Columns:    []Column{{Key: "size", Title: "Size", Policy: Fixed, Width: 4}},
		ShowHeader: true,
	})
	// header, two list rows, status line
	m = m.SetSize(30, 4)
	m, _ = press(m, keyOf(tea.KeyEnd))
	require.Equal(t, 2, m.State().Offset())

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("B"), selected(m), "header row")

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("A2"), selected(m))
}

func TestUpdate_MouseWheelMovesSelection(t *testing.T) {
	m := newList(t, sample(t), Config{View: view.Options{Expand: view.ExpandPolicyAll}})
	m, _ = press(m, keyOf(tea.KeyDown))
	require.Equal(t, tree.NodeID("A"), selected(m))

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, tree.NodeID("A2"), selected(m))

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, tree.NodeID("A1"), selected(m))
}

func TestUpdate_MouseIgnoredWhileFiltering(t *testing.T) {
	m := newList(t, sample(t), Config{View: view.Options{Expand: view.ExpandPolicyAll}})
	m, _ = press(m, keyOf(tea.KeyDown), runes("/"))
	require.IsType(t, Filtering{}, m.Mode())

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, tree.NodeID("A"), selected(m))
}

func TestUpdate_FullHelpOverlay(t *testing.T) {
	m := newList(t, sample(t), Config{View: view.Options{Expand: view.ExpandPolicyAll}})
	assert.NotContains(t, m.View(), "page down")

	m, _ = press(m, runes("?"))
	v := m.View()
	assert.Contains(t, v, "page down")
	assert.Len(t, strings.Split(v, "\n"), 10, "the overlay keeps the component height")

	m, _ = press(m, keyOf(tea.KeyDown))
	assert.Empty(t, selected(m), "keys are swallowed while help is shown")

	m, _ = press(m, keyOf(tea.KeyEsc))
	assert.NotContains(t, m.View(), "page down")
	m, _ = press(m, keyOf(tea.KeyDown))
	assert.Equal(t, tree.NodeID("A"), selected(m))
}

func TestDispatch_RunsActionsDirectly(t *testing.T) {
	m := newList(t, sample(t), Config{})

	m, _ = m.Dispatch(view.ExpandAll)
	assert.Equal(t, []tree.NodeID{"A", "A1", "A2", "B"}, visibleIDs(m))

	m, _ = m.Dispatch(view.NavigateLast)
	assert.Equal(t, tree.NodeID("B"), selected(m))

	m, _ = m.Dispatch(view.ConfirmFilter)
	assert.IsType(t, Browsing{}, m.Mode())
}

func TestNew_ReportsStructuralErrors(t *testing.T) {
	m, err := New(brokenModel{sample(t)}, Config{View: view.Options{Expand: view.ExpandPolicyAll}})
	require.ErrorIs(t, err, view.ErrStructuralInconsistency)
	assert.True(t, m.State().Stale())
	assert.Contains(t, m.SetSize(40, 5).View(), "stale")
}

// brokenModel lists a child the tree does not contain.
type brokenModel struct{ *tree.Memory }

func (b brokenModel) Children(id tree.NodeID) []tree.NodeID {
	kids := b.Memory.Children(id)
	if id == "A" {
		return append(append([]tree.NodeID(nil), kids...), "ghost")
	}
	return kids
}
