package instance

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/gofrs/flock"

	"traynote/internal/logging"
)

// Guard enforces single-instance execution with an advisory file lock stamped
// with the owning process id.
type Guard struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger

	mu   sync.Mutex
	held bool
}

// New constructs a guard for the given lock file path.
func New(path string, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Guard{
		path:   path,
		lock:   flock.New(path),
		logger: logger.With(slog.String(logging.FieldComponent, "instance")),
	}
}

// Path returns the lock file location.
func (g *Guard) Path() string {
	return g.path
}

// Acquire attempts to take the exclusive lock without blocking. It returns
// false when another process already holds it. On success the lock file is
// stamped with the current pid.
func (g *Guard) Acquire() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held {
		return true, nil
	}

	ok, err := g.lock.TryLock()
	if err != nil {
		return false, fmt.Errorf("acquire lock %s: %w", g.path, err)
	}
	if !ok {
		return false, nil
	}

	g.held = true
	if err := os.WriteFile(g.path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		// The lock is what matters; the pid stamp is informational.
		g.logger.Warn("failed to stamp lock file", slog.Any("error", err))
	}
	g.logger.Debug("instance lock acquired", slog.String("path", g.path))
	return true, nil
}

// Release unlocks and removes the lock file. It is idempotent and never
// returns an error: cleanup runs on every exit path, including signal
// handling, and must not fail the shutdown sequence.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.held {
		return
	}
	g.held = false

	if err := g.lock.Unlock(); err != nil {
		g.logger.Warn("failed to release instance lock", slog.Any("error", err))
	}
	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		g.logger.Warn("failed to remove lock file", slog.Any("error", err))
	}
}
