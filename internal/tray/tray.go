// Package tray implements the status-indicator surface on the system tray.
// It is the only package that touches systray; the controller sees the narrow
// notifier.Surface interface and tests substitute a fake.
package tray

import (
	"log/slog"
	"sync"

	"fyne.io/systray"

	"traynote/internal/logging"
	"traynote/internal/notifier"
)

// Tray drives the system tray icon and context menu. The menu is rebuilt from
// the controller's declarative entries on every change; clicks are forwarded
// to the select callback by id.
type Tray struct {
	logger   *slog.Logger
	onSelect func(id string)

	mu   sync.Mutex
	stop chan struct{}
}

// New constructs a tray surface. onSelect receives the stable id of every
// clicked menu entry.
func New(logger *slog.Logger, onSelect func(id string)) *Tray {
	if logger == nil {
		logger = logging.NewNop()
	}
	if onSelect == nil {
		onSelect = func(string) {}
	}
	return &Tray{
		logger:   logger.With(slog.String(logging.FieldComponent, "tray")),
		onSelect: onSelect,
	}
}

// Run enters the systray main loop. onReady runs once the tray is available;
// the call blocks until Quit.
func (t *Tray) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

// Quit leaves the systray main loop.
func (t *Tray) Quit() {
	systray.Quit()
}

// SetIcon replaces the tray icon with the rendered PNG frame.
func (t *Tray) SetIcon(icon []byte) {
	systray.SetIcon(icon)
}

// SetTooltip replaces the tray hover text.
func (t *Tray) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// SetMenu rebuilds the context menu. Forwarding goroutines from the previous
// build are stopped before the new entries are installed.
func (t *Tray) SetMenu(entries []notifier.MenuEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
	}
	t.stop = make(chan struct{})

	systray.ResetMenu()
	for _, entry := range entries {
		t.addEntry(nil, entry, t.stop)
	}
}

func (t *Tray) addEntry(parent *systray.MenuItem, entry notifier.MenuEntry, stop chan struct{}) {
	if entry.Separator {
		if parent == nil {
			systray.AddSeparator()
		}
		return
	}

	var item *systray.MenuItem
	switch {
	case parent == nil && entry.Checkable:
		item = systray.AddMenuItemCheckbox(entry.Label, entry.Label, entry.Checked)
	case parent == nil:
		item = systray.AddMenuItem(entry.Label, entry.Label)
	case entry.Checkable:
		item = parent.AddSubMenuItemCheckbox(entry.Label, entry.Label, entry.Checked)
	default:
		item = parent.AddSubMenuItem(entry.Label, entry.Label)
	}

	for _, child := range entry.Children {
		t.addEntry(item, child, stop)
	}

	if len(entry.Children) == 0 && entry.ID != "" {
		go t.forward(item, entry.ID, stop)
	}
}

func (t *Tray) forward(item *systray.MenuItem, id string, stop chan struct{}) {
	for {
		select {
		case _, ok := <-item.ClickedCh:
			if !ok {
				return
			}
			t.onSelect(id)
		case <-stop:
			return
		}
	}
}

// Notify surfaces a user-facing message. The tray has no dialog of its own, so
// messages land in the log at a severity-appropriate level.
func (t *Tray) Notify(severity notifier.Severity, message string) {
	switch severity {
	case notifier.SeverityError:
		t.logger.Error(message)
	case notifier.SeverityWarning:
		t.logger.Warn(message)
	default:
		t.logger.Info(message)
	}
}
