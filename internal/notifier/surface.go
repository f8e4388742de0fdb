package notifier

// Status is the single authoritative display state. Transitions happen only on
// the controller's event loop.
type Status int

const (
	// StatusIdle shows a static icon; the animation loop is stopped.
	StatusIdle Status = iota
	// StatusChecking flashes the icon on the fast cycle while a check runs.
	StatusChecking
	// StatusUpdatesAvailable flashes the icon on the slow cycle.
	StatusUpdatesAvailable
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusUpdatesAvailable:
		return "updates_available"
	default:
		return "idle"
	}
}

// Severity classifies user-facing messages pushed through the surface.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// MenuEntry describes one context-menu item. Entries are identified by stable
// ids rather than positions, so the surface can be rebuilt from scratch on
// every settings change without index bookkeeping.
type MenuEntry struct {
	ID        string
	Label     string
	Checkable bool
	Checked   bool
	Separator bool
	Children  []MenuEntry
}

// Surface is the status-indicator the controller drives: typically a system
// tray icon, replaced by a fake in tests. Implementations must tolerate calls
// from the controller goroutine at any time after Start.
type Surface interface {
	// SetIcon replaces the indicator icon with the rendered frame.
	SetIcon(icon []byte)
	// SetTooltip replaces the hover text.
	SetTooltip(tooltip string)
	// SetMenu rebuilds the context menu from the declarative entries.
	SetMenu(entries []MenuEntry)
	// Notify surfaces a user-facing message outside the menu.
	Notify(severity Severity, message string)
}
