package navbar

// HideThreshold is the scroll offset below which scrolling down never hides the header.
const HideThreshold = 80

// State is the transient UI state of one navbar instance.
type State struct {
	MenuOpen         bool
	HeaderVisible    bool
	LastScrollOffset float64
}

// NewState returns the state of a freshly mounted navbar: menu closed, header shown.
func NewState() State {
	return State{HeaderVisible: true}
}

// Scroll applies the visibility rule for a new vertical offset y and records y as the
// last offset. It reports whether HeaderVisible changed.
func (s *State) Scroll(y float64) bool {
	before := s.HeaderVisible

	switch {
	case y > s.LastScrollOffset && y > HideThreshold:
		s.HeaderVisible = false
	case y < s.LastScrollOffset:
		s.HeaderVisible = true
	}

	s.LastScrollOffset = y

	return before != s.HeaderVisible
}

// ToggleMenu flips the mobile menu.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// CloseMenu closes the mobile menu and reports whether it was open.
func (s *State) CloseMenu() bool {
	if !s.MenuOpen {
		return false
	}

	s.MenuOpen = false

	return true
}

// IsActive reports whether candidate is the link for the current route.
func IsActive(current, candidate string) bool {
	return current == candidate
}
