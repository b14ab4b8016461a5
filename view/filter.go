package view

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// MatchFunc reports whether label matches pattern.
//
// When a Filter is case-insensitive both arguments arrive case-folded.
type MatchFunc func(label, pattern string) bool

// Filter configures live text filtering of the Visible List.
//
// An empty Pattern disables filtering.
type Filter struct {
	Pattern       string
	CaseSensitive bool
	// Match overrides the default substring matcher.
	Match MatchFunc
	// KeepCollapsed honors the Expansion set strictly. By default ancestors
	// of matches are emitted expanded even when collapsed.
	KeepCollapsed bool
}

// NewFilter returns a case-insensitive, auto-expanding substring filter.
func NewFilter(pattern string) Filter {
	return Filter{Pattern: pattern}
}

// Active reports whether the filter restricts the Visible List.
func (f Filter) Active() bool { return f.Pattern != "" }

func (f Filter) matcher() func(label string) bool {
	match := f.Match
	if match == nil {
		match = SubstringMatch
	}
	if f.CaseSensitive {
		pattern := f.Pattern
		return func(label string) bool { return match(label, pattern) }
	}

	fold := cases.Fold()
	pattern := fold.String(f.Pattern)
	return func(label string) bool { return match(fold.String(label), pattern) }
}

// SubstringMatch is the default matcher.
func SubstringMatch(label, pattern string) bool {
	return strings.Contains(label, pattern)
}

// FuzzyMatch matches when every character of pattern appears in label in
// order, ranked the way file pickers do.
func FuzzyMatch(label, pattern string) bool {
	if pattern == "" {
		return true
	}
	return len(fuzzy.Find(pattern, []string{label})) > 0
}

// Filter returns the active filter configuration.
func (s *State) Filter() Filter { return s.filter }

// SetFilter replaces the filter and recomputes the Visible List.
func (s *State) SetFilter(f Filter) error {
	cb := s.beginChange(ChangeFilter)
	saved := s.filter
	s.filter = f
	if err := s.refresh(); err != nil {
		s.filter = saved
		return err
	}
	s.version++
	s.commitChange(cb)
	return nil
}

// SetPattern changes only the pattern of the active filter.
func (s *State) SetPattern(pattern string) error {
	f := s.filter
	f.Pattern = pattern
	return s.SetFilter(f)
}

func (s *State) ClearFilter() error { return s.SetPattern("") }
