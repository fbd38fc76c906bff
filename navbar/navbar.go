package navbar

import "log/slog"

// Snapshot is a read-only copy of what a render needs.
type Snapshot struct {
	MenuOpen      bool
	HeaderVisible bool
	Path          string
}

// ChangeKind says which part of the snapshot moved.
type ChangeKind int

const (
	// ChangeVisibility is a header show/hide; the markup itself is unchanged.
	ChangeVisibility ChangeKind = iota
	// ChangeMenu is a mobile menu open/close.
	ChangeMenu
	// ChangeRoute is a new active path.
	ChangeRoute
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeVisibility:
		return "visibility"
	case ChangeMenu:
		return "menu"
	case ChangeRoute:
		return "route"
	default:
		return "unknown"
	}
}

// ChangeFunc is notified after the state changed.
type ChangeFunc func(kind ChangeKind, snap Snapshot)

// Navbar is one mounted navigation bar. It is driven from a single event loop and is
// not safe for concurrent use.
type Navbar struct {
	state    State
	path     string
	onChange ChangeFunc

	unsubscribe func()
}

// Option adjusts the initial state of a navbar.
type Option func(*Navbar)

// WithMenuOpen starts the navbar with the mobile menu in the given position, for pages
// that were already rendered with the panel open.
func WithMenuOpen(open bool) Option {
	return func(n *Navbar) {
		n.state.MenuOpen = open
	}
}

// New creates a navbar for the page at path. onChange may be nil.
func New(path string, onChange ChangeFunc, opts ...Option) *Navbar {
	n := &Navbar{
		state:    NewState(),
		path:     path,
		onChange: onChange,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Mount subscribes the navbar to src. A previous subscription is released first, so
// there is never more than one live listener per navbar.
func (n *Navbar) Mount(src ScrollSource) {
	n.Unmount()
	n.unsubscribe = src.Subscribe(n.handleScroll)
}

// Unmount releases the scroll subscription, if any.
func (n *Navbar) Unmount() {
	if n.unsubscribe == nil {
		return
	}

	n.unsubscribe()
	n.unsubscribe = nil
}

// Mounted reports whether the navbar currently holds a scroll subscription.
func (n *Navbar) Mounted() bool {
	return n.unsubscribe != nil
}

func (n *Navbar) handleScroll(y float64) {
	if n.state.Scroll(y) {
		n.notify(ChangeVisibility)
	}
}

// Toggle flips the mobile menu.
func (n *Navbar) Toggle() {
	n.state.ToggleMenu()
	n.notify(ChangeMenu)
}

// Navigate makes path the active route. A different path closes the mobile menu;
// the same path is a no-op.
func (n *Navbar) Navigate(path string) {
	if path == n.path {
		return
	}

	n.path = path
	n.state.CloseMenu()
	n.notify(ChangeRoute)
}

// Snapshot returns the current render input.
func (n *Navbar) Snapshot() Snapshot {
	return Snapshot{
		MenuOpen:      n.state.MenuOpen,
		HeaderVisible: n.state.HeaderVisible,
		Path:          n.path,
	}
}

// State returns a copy of the raw state.
func (n *Navbar) State() State {
	return n.state
}

func (n *Navbar) notify(kind ChangeKind) {
	snap := n.Snapshot()
	slog.Debug("Navbar changed", "kind", kind, "menuOpen", snap.MenuOpen, "headerVisible", snap.HeaderVisible, "path", snap.Path)

	if n.onChange != nil {
		n.onChange(kind, snap)
	}
}
