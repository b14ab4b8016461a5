package view

// Offset returns the index of the first row in the viewport.
func (s *State) Offset() int { return s.offset }

func (s *State) ViewportHeight() int { return s.height }

// SetViewportHeight resizes the viewport. Heights below 1 count as 1.
func (s *State) SetViewportHeight(h int) {
	h = max(1, h)
	if h == s.height {
		return
	}
	cb := s.beginChange(ChangeScroll)
	s.height = h
	s.ensureVisible()
	s.commitChange(cb)
}

// Window returns the half-open index range of rows inside the viewport.
func (s *State) Window() (start, end int) {
	return s.offset, min(len(s.visible), s.offset+s.height)
}

// ensureVisible nudges the offset by the smallest amount that keeps the
// selection inside the viewport, then clamps it to the list.
func (s *State) ensureVisible() {
	s.offset = min(s.offset, max(0, len(s.visible)-s.height))
	s.offset = max(s.offset, 0)

	i := s.SelectedIndex()
	if i < 0 {
		return
	}
	if i < s.offset {
		s.offset = i
	} else if i >= s.offset+s.height {
		s.offset = i - s.height + 1
	}
}
