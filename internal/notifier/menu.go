package notifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stable menu entry ids. Interval entries use the "interval:<seconds>" form so
// the selected value survives menu rebuilds.
const (
	MenuCheckNow   = "check_now"
	MenuRunUpdates = "run_updates"
	MenuClearAlert = "clear_alert"
	MenuAbout      = "about"
	MenuQuit       = "quit"

	menuIntervalPrefix = "interval:"
)

// IntervalOption is one selectable polling interval.
type IntervalOption struct {
	Label    string
	Duration time.Duration
}

// IntervalOptions lists the polling intervals offered in the menu.
func IntervalOptions() []IntervalOption {
	return []IntervalOption{
		{Label: "30 minutes", Duration: 30 * time.Minute},
		{Label: "1 hour", Duration: time.Hour},
		{Label: "2 hours", Duration: 2 * time.Hour},
		{Label: "6 hours", Duration: 6 * time.Hour},
		{Label: "12 hours", Duration: 12 * time.Hour},
		{Label: "Daily", Duration: 24 * time.Hour},
	}
}

// IntervalEntryID builds the stable menu id for an interval option.
func IntervalEntryID(d time.Duration) string {
	return menuIntervalPrefix + strconv.Itoa(int(d/time.Second))
}

func parseIntervalEntryID(id string) (time.Duration, bool) {
	raw, ok := strings.CutPrefix(id, menuIntervalPrefix)
	if !ok {
		return 0, false
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

// menuEntries renders the declarative menu for the current interval setting.
func (c *Controller) menuEntries() []MenuEntry {
	current := c.settings.CheckInterval()

	intervals := make([]MenuEntry, 0, len(IntervalOptions()))
	for _, opt := range IntervalOptions() {
		intervals = append(intervals, MenuEntry{
			ID:        IntervalEntryID(opt.Duration),
			Label:     opt.Label,
			Checkable: true,
			Checked:   opt.Duration == current,
		})
	}

	return []MenuEntry{
		{ID: MenuCheckNow, Label: "Check for Updates Now"},
		{ID: MenuRunUpdates, Label: fmt.Sprintf("Run %s Updates", strings.ToUpper(c.cfg.Updates.Tool))},
		{Separator: true},
		{
			ID:    "settings",
			Label: "Settings",
			Children: []MenuEntry{
				{ID: "check_interval", Label: "Check Interval", Children: intervals},
				{ID: MenuClearAlert, Label: "Clear Update Alert"},
			},
		},
		{Separator: true},
		{ID: MenuAbout, Label: "About"},
		{ID: MenuQuit, Label: "Quit"},
	}
}
