package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"traynote/internal/animator"
	"traynote/internal/config"
	"traynote/internal/history"
	"traynote/internal/logging"
	"traynote/internal/settings"
	"traynote/internal/updates"
)

// CheckRunner runs one update check. Satisfied by *updates.Checker.
type CheckRunner interface {
	Run(ctx context.Context) updates.Result
}

// HistoryRecorder persists completed check cycles. Satisfied by *history.Store.
type HistoryRecorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

type commandKind int

const (
	cmdCheck commandKind = iota
	cmdClearAlert
	cmdSetInterval
	cmdLaunchSession
	cmdSessionDone
	cmdSnapshot
)

type command struct {
	kind     commandKind
	interval time.Duration
	reply    chan Snapshot
}

type completion struct {
	checkID   string
	startedAt time.Time
	result    updates.Result
}

// Snapshot is a consistent view of the controller state, answered by the event
// loop itself so readers never observe a mid-transition mix.
type Snapshot struct {
	Status           Status
	UpdatesAvailable bool
	Checking         bool
	SessionRunning   bool
	Animating        bool
	CheckInterval    time.Duration
}

// Controller is the orchestrating state machine. All status, animation, and
// surface mutations happen on its single event-loop goroutine; background
// workers hand results back through channels the loop drains.
type Controller struct {
	cfg      *config.Config
	logger   *slog.Logger
	surface  Surface
	settings *settings.Store
	checker  CheckRunner
	launcher SessionLauncher
	history  HistoryRecorder
	anim     *animator.Animator

	commands    chan command
	completions chan completion

	cancel context.CancelFunc
	done   chan struct{}

	// Loop-owned state. Never touched outside the run goroutine.
	status           Status
	updatesAvailable bool
	checking         bool
	sessionRunning   bool
	pollTimer        *time.Timer
	flashTicker      *time.Ticker
	flashC           <-chan time.Time
}

// Option configures the controller.
type Option func(*Controller)

// WithSessionLauncher overrides the terminal launcher (primarily for tests).
func WithSessionLauncher(launcher SessionLauncher) Option {
	return func(c *Controller) {
		if launcher != nil {
			c.launcher = launcher
		}
	}
}

// WithHistory enables check-history recording.
func WithHistory(recorder HistoryRecorder) Option {
	return func(c *Controller) {
		c.history = recorder
	}
}

// New constructs a controller. The surface, settings store, checker, and
// animator are required collaborators.
func New(cfg *config.Config, surface Surface, store *settings.Store, checker CheckRunner, anim *animator.Animator, logger *slog.Logger, opts ...Option) (*Controller, error) {
	if cfg == nil || surface == nil || store == nil || checker == nil || anim == nil {
		return nil, errors.New("controller requires config, surface, settings, checker, and animator")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Controller{
		cfg:         cfg,
		logger:      logger.With(slog.String(logging.FieldComponent, "notifier")),
		surface:     surface,
		settings:    store,
		checker:     checker,
		anim:        anim,
		commands:    make(chan command, 16),
		completions: make(chan completion, 1),
		done:        make(chan struct{}),
		status:      StatusChecking,
	}
	c.launcher = NewTerminalLauncher(cfg, logger)
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start launches the event loop. A check dispatches immediately.
func (c *Controller) Start(ctx context.Context) error {
	if c.cancel != nil {
		return errors.New("controller already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	go c.run(runCtx)
	return nil
}

// Stop cancels the event loop and waits for it to finish.
func (c *Controller) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
}

// Done is closed when the event loop has exited.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// RequestCheck asks for a new check cycle. A no-op while one is in flight.
func (c *Controller) RequestCheck() {
	c.enqueue(command{kind: cmdCheck})
}

// ClearAlert forces the status back to idle without cancelling an in-flight check.
func (c *Controller) ClearAlert() {
	c.enqueue(command{kind: cmdClearAlert})
}

// SetCheckInterval persists a new polling interval and reschedules the timer.
func (c *Controller) SetCheckInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	c.enqueue(command{kind: cmdSetInterval, interval: interval})
}

// LaunchSession opens an interactive terminal session running the update tool.
func (c *Controller) LaunchSession() {
	c.enqueue(command{kind: cmdLaunchSession})
}

// Snapshot returns the current controller state, or the zero value after shutdown.
func (c *Controller) Snapshot() Snapshot {
	reply := make(chan Snapshot, 1)
	select {
	case c.commands <- command{kind: cmdSnapshot, reply: reply}:
	case <-c.done:
		return Snapshot{}
	}
	select {
	case snap := <-reply:
		return snap
	case <-c.done:
		return Snapshot{}
	}
}

// HandleMenu dispatches a context-menu selection by its stable id. Safe to
// call from any goroutine; the surface implementation forwards clicks here.
func (c *Controller) HandleMenu(id string) {
	switch id {
	case MenuCheckNow:
		c.RequestCheck()
	case MenuRunUpdates:
		c.LaunchSession()
	case MenuClearAlert:
		c.ClearAlert()
	case MenuAbout:
		c.surface.Notify(SeverityInfo, aboutText(c.cfg.Updates.Tool))
	case MenuQuit:
		if c.cancel != nil {
			c.cancel()
		}
	default:
		if interval, ok := parseIntervalEntryID(id); ok {
			c.SetCheckInterval(interval)
		}
	}
}

func (c *Controller) enqueue(cmd command) {
	select {
	case c.commands <- cmd:
	default:
		c.logger.Warn("command queue full, dropping command")
	}
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)

	c.surface.SetMenu(c.menuEntries())
	c.surface.SetIcon(c.anim.Base().PNG())

	interval := c.settings.CheckInterval()
	c.pollTimer = time.NewTimer(interval)
	defer c.pollTimer.Stop()

	c.beginCheck(ctx)

	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return
		case cmd := <-c.commands:
			c.handleCommand(ctx, cmd)
		case comp := <-c.completions:
			c.finishCheck(ctx, comp)
		case <-c.pollTimer.C:
			c.beginCheck(ctx)
			c.pollTimer.Reset(c.settings.CheckInterval())
		case <-c.flashC:
			c.onFlashTick()
		}
	}
}

func (c *Controller) shutdown() {
	c.stopFlashing()
	c.anim.ClearCache()
	c.logger.Info("notifier stopped")
}

func (c *Controller) handleCommand(ctx context.Context, cmd command) {
	switch cmd.kind {
	case cmdCheck:
		c.beginCheck(ctx)
	case cmdClearAlert:
		c.clearAlert()
	case cmdSetInterval:
		c.applyInterval(cmd.interval)
	case cmdLaunchSession:
		c.launchSession()
	case cmdSessionDone:
		c.sessionDone()
	case cmdSnapshot:
		cmd.reply <- Snapshot{
			Status:           c.status,
			UpdatesAvailable: c.updatesAvailable,
			Checking:         c.checking,
			SessionRunning:   c.sessionRunning,
			Animating:        c.flashC != nil,
			CheckInterval:    c.settings.CheckInterval(),
		}
	}
}

// beginCheck dispatches the checker on a worker goroutine. Requests while a
// check is in flight are ignored, not queued.
func (c *Controller) beginCheck(ctx context.Context) {
	if c.checking {
		c.logger.Debug("check already in flight, ignoring request")
		return
	}
	c.checking = true
	c.updatesAvailable = false
	c.setStatus(StatusChecking)
	c.anim.SetCycle(animator.CycleFast)
	c.anim.Reset()
	c.startFlashing()
	c.surface.SetTooltip("Checking for updates...")

	checkID := uuid.NewString()
	startedAt := time.Now()
	checkCtx := logging.ContextWithCheckID(ctx, checkID)
	logging.WithCheckID(c.logger, checkID).Info("update check dispatched")

	go func() {
		result := c.checker.Run(checkCtx)
		select {
		case c.completions <- completion{checkID: checkID, startedAt: startedAt, result: result}:
		case <-ctx.Done():
		}
	}()
}

func (c *Controller) finishCheck(ctx context.Context, comp completion) {
	c.checking = false
	finishedAt := time.Now()
	// The last-check timestamp persists regardless of outcome.
	c.settings.SetLastCheck(finishedAt)
	c.recordHistory(ctx, comp, finishedAt)

	logger := logging.WithCheckID(c.logger, comp.checkID)
	logger.Info("update check finished",
		slog.String(logging.FieldOutcome, comp.result.Outcome.String()),
		slog.Int("updates", len(comp.result.Records)))

	if comp.result.Outcome == updates.OutcomeFound {
		c.updatesAvailable = true
		c.setStatus(StatusUpdatesAvailable)
		c.anim.SetCycle(animator.CycleSlow)
		c.anim.Reset()
		c.startFlashing()
		c.surface.SetTooltip(fmt.Sprintf("%d updates available", len(comp.result.Records)))
		return
	}

	// No updates flagged during this cycle: drop back to idle. A prior alert
	// the user has not acted on is cleared too; beginCheck already reset it.
	if !c.updatesAvailable {
		c.setStatus(StatusIdle)
		c.stopFlashing()
		c.surface.SetIcon(c.anim.Base().PNG())
		c.surface.SetTooltip(fmt.Sprintf("No updates available · checked %s", humanize.Time(finishedAt)))
	}
}

func (c *Controller) recordHistory(ctx context.Context, comp completion, finishedAt time.Time) {
	if c.history == nil {
		return
	}
	entry := history.Entry{
		CheckID:     comp.checkID,
		StartedAt:   comp.startedAt,
		FinishedAt:  finishedAt,
		Outcome:     comp.result.Outcome.String(),
		UpdateCount: len(comp.result.Records),
	}
	if err := c.history.Record(ctx, entry); err != nil {
		c.logger.Warn("failed to record check history", slog.Any("error", err))
	}
}

func (c *Controller) clearAlert() {
	c.updatesAvailable = false
	c.setStatus(StatusIdle)
	c.stopFlashing()
	c.surface.SetIcon(c.anim.Base().PNG())
	c.surface.SetTooltip("Update alert cleared")
}

func (c *Controller) applyInterval(interval time.Duration) {
	c.settings.SetCheckInterval(interval)
	if !c.pollTimer.Stop() {
		select {
		case <-c.pollTimer.C:
		default:
		}
	}
	c.pollTimer.Reset(interval)
	c.surface.SetMenu(c.menuEntries())
	c.logger.Info("check interval changed", slog.Duration("interval", interval))
}

func (c *Controller) launchSession() {
	if c.sessionRunning {
		c.surface.Notify(SeverityInfo, "An update session is already running. Close it first.")
		return
	}
	wait, err := c.launcher.Launch()
	if err != nil {
		c.logger.Warn("failed to launch session", slog.Any("error", err))
		c.surface.Notify(SeverityError, "Could not find a terminal emulator. Install gnome-terminal, konsole, or xterm.")
		return
	}
	c.sessionRunning = true
	go func() {
		if err := wait(); err != nil {
			c.logger.Debug("session ended with error", slog.Any("error", err))
		}
		c.enqueue(command{kind: cmdSessionDone})
	}()
}

// sessionDone clears the session flag and schedules a single follow-up check
// after a short delay, letting package state settle before re-querying.
func (c *Controller) sessionDone() {
	c.sessionRunning = false
	delay := time.Duration(c.cfg.Session.RecheckDelay) * time.Second
	time.AfterFunc(delay, c.RequestCheck)
	c.logger.Info("interactive session ended", slog.Duration("recheck_delay", delay))
}

func (c *Controller) onFlashTick() {
	if c.status == StatusIdle {
		// Idle icons are static; the ticker is pure waste here.
		c.stopFlashing()
		c.surface.SetIcon(c.anim.Base().PNG())
		return
	}
	c.anim.Advance(animator.TickInterval)
	c.surface.SetIcon(c.anim.Render(c.anim.State().Brightness).PNG())
}

func (c *Controller) startFlashing() {
	if c.flashTicker != nil {
		return
	}
	c.flashTicker = time.NewTicker(animator.TickInterval)
	c.flashC = c.flashTicker.C
}

func (c *Controller) stopFlashing() {
	if c.flashTicker == nil {
		return
	}
	c.flashTicker.Stop()
	c.flashTicker = nil
	c.flashC = nil
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.logger.Debug("status transition",
		slog.String("from", c.status.String()),
		slog.String(logging.FieldStatus, status.String()))
	c.status = status
}

func aboutText(tool string) string {
	return fmt.Sprintf(
		"traynote: a system tray notifier that checks for pending %s package updates and flashes its icon when any are available.",
		tool,
	)
}
