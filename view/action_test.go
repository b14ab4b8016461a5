package view

import (
	"errors"
	"testing"

	"github.com/iw2rmb/treelist/tree"
)

func TestAction_NamesRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Fatalf("parse %q: got %v %v, want %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Fatalf("none must not parse")
	}
	if _, ok := ParseAction("fly"); ok {
		t.Fatalf("unknown name must not parse")
	}
}

func TestApply_Navigation(t *testing.T) {
	s := newState(t, sample(t), Options{Expand: ExpandPolicyAll})

	for _, step := range []struct {
		action Action
		want   tree.NodeID
	}{
		{NavigateDown, "A"},
		{NavigateDown, "A1"},
		{NavigateLast, "B"},
		{NavigateDown, "B"},
		{NavigateFirst, "A"},
		{NavigateUp, "A"},
		{NavigateChild, "A1"},
		{NavigateParent, "A"},
	} {
		ev, err := s.Apply(step.action)
		if err != nil {
			t.Fatalf("%v: %v", step.action, err)
		}
		if ev != EventHandled {
			t.Fatalf("%v: event got %v, want handled", step.action, ev)
		}
		wantSelected(t, s, step.want)
	}
}

func TestApply_ToggleAndEdits(t *testing.T) {
	s := newState(t, sample(t), Options{Expand: ExpandPolicyAll})

	if ev, _ := s.Apply(Toggle); ev != EventIgnored {
		t.Fatalf("toggle without selection: got %v, want ignored", ev)
	}
	s.MoveFirst()
	if ev, err := s.Apply(Toggle); ev != EventHandled || err != nil {
		t.Fatalf("toggle: got %v %v", ev, err)
	}
	wantVisible(t, s, "A", "B")

	s.MoveLast()
	if ev, _ := s.Apply(Toggle); ev != EventIgnored {
		t.Fatalf("toggle leaf: got %v, want ignored", ev)
	}
	if ev, err := s.Apply(ReorderUp); ev != EventHandled || err != nil {
		t.Fatalf("reorder up: got %v %v", ev, err)
	}
	wantVisible(t, s, "B", "A")

	if ev, err := s.Apply(ReorderUp); ev != EventIgnored || !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("reorder past first: got %v %v", ev, err)
	}
	if ev, err := s.Apply(Detach); ev != EventHandled || err != nil {
		t.Fatalf("detach: got %v %v", ev, err)
	}
	wantVisible(t, s, "A")
	wantSelected(t, s, "A")
	if ev, err := s.Apply(Paste); ev != EventHandled || err != nil {
		t.Fatalf("paste: got %v %v", ev, err)
	}
	wantVisible(t, s, "A", "A1", "A2", "B")
	wantSelected(t, s, "B")
}

func TestApply_ModalActionsAreForwarded(t *testing.T) {
	s := newState(t, sample(t), Options{})
	for _, a := range []Action{Add, Rename, StartFilter, ConfirmFilter, CancelFilter, Quit} {
		ev, err := s.Apply(a)
		if err != nil || ev != EventForwarded {
			t.Fatalf("%v: got %v %v, want forwarded", a, ev, err)
		}
	}
}

func TestApply_EmptyListIgnoresNavigation(t *testing.T) {
	s := newState(t, graph{}, Options{})
	if ev, _ := s.Apply(NavigateDown); ev != EventIgnored {
		t.Fatalf("navigate: got %v, want ignored", ev)
	}
	if ev, _ := s.Apply(Delete); ev != EventIgnored {
		t.Fatalf("delete: got %v, want ignored", ev)
	}
}
