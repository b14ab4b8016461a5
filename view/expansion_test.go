package view

import (
	"slices"
	"testing"

	"github.com/iw2rmb/treelist/tree"
)

func TestExpansion_Membership(t *testing.T) {
	e := NewExpansion("b")

	if !e.Expand("a") || e.Expand("a") {
		t.Fatalf("expand: expected change only on first call")
	}
	if got := e.Toggle("b"); got {
		t.Fatalf("toggle b: got expanded, want collapsed")
	}
	if got := e.Toggle("c"); !got {
		t.Fatalf("toggle c: got collapsed, want expanded")
	}
	if got, want := e.IDs(), []tree.NodeID{"a", "c"}; !slices.Equal(got, want) {
		t.Fatalf("ids: got %v, want %v", got, want)
	}
	e.Retain(func(id tree.NodeID) bool { return id != "a" })
	if e.IsExpanded("a") || e.Len() != 1 {
		t.Fatalf("retain: got %v", e.IDs())
	}
	if !e.Clear() || e.Clear() {
		t.Fatalf("clear: expected change only on first call")
	}
}

func TestExpansion_NilExpandsNothing(t *testing.T) {
	var e *Expansion
	if e.IsExpanded("a") || e.Len() != 0 || e.IDs() != nil {
		t.Fatalf("nil set must be empty")
	}
}

func TestMatchers(t *testing.T) {
	for _, tc := range []struct {
		match          MatchFunc
		label, pattern string
		want           bool
	}{
		{SubstringMatch, "readme.md", "me.m", true},
		{SubstringMatch, "readme.md", "rm", false},
		{FuzzyMatch, "readme.md", "rmd", true},
		{FuzzyMatch, "readme.md", "xyz", false},
		{FuzzyMatch, "anything", "", true},
	} {
		if got := tc.match(tc.label, tc.pattern); got != tc.want {
			t.Fatalf("match(%q, %q): got %v, want %v", tc.label, tc.pattern, got, tc.want)
		}
	}
}

func TestFilter_FoldsUnicodeCase(t *testing.T) {
	match := NewFilter("STRASSE").matcher()
	if !match("Straße") {
		t.Fatalf("expected folded match of Straße")
	}
}
