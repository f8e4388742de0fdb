// Package notifier contains the state machine coordinating background update
// checks, the flash animation, and the status-indicator surface.
//
// The controller owns all display state on a single event-loop goroutine.
// Workers (the checker, session monitors) communicate exclusively through
// channels the loop drains, so Status never mutates concurrently. The surface
// is a narrow interface; the systray implementation lives in internal/tray and
// tests substitute a fake.
package notifier
