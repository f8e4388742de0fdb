// Package updates runs the external update tool and parses its report of
// pending package updates.
package updates

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"traynote/internal/config"
	"traynote/internal/logging"
	"traynote/internal/services"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
}

// Option configures the checker.
type Option func(*Checker)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Checker) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLookPath injects a custom binary resolver (primarily for tests).
func WithLookPath(lookPath func(string) (string, error)) Option {
	return func(c *Checker) {
		if lookPath != nil {
			c.lookPath = lookPath
		}
	}
}

// Checker wraps the external update tool. A check runs three sub-steps:
// resolve the tool on PATH, sync the package database (best effort), and query
// pending updates. Each sub-step has a hard wall-clock timeout so a wedged
// tool can never hang the worker.
type Checker struct {
	tool            string
	syncWithSudo    bool
	syncTimeout     time.Duration
	checkTimeout    time.Duration
	presenceTimeout time.Duration
	exec            Executor
	lookPath        func(string) (string, error)
	logger          *slog.Logger
}

// NewChecker constructs a checker from configuration.
func NewChecker(cfg *config.Config, logger *slog.Logger, opts ...Option) *Checker {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Checker{
		tool:            cfg.Updates.Tool,
		syncWithSudo:    cfg.Updates.SyncWithSudo,
		syncTimeout:     time.Duration(cfg.Updates.SyncTimeout) * time.Second,
		checkTimeout:    time.Duration(cfg.Updates.CheckTimeout) * time.Second,
		presenceTimeout: time.Duration(cfg.Updates.PresenceTimeout) * time.Second,
		exec:            commandExecutor{},
		lookPath:        exec.LookPath,
		logger:          logger.With(slog.String(logging.FieldComponent, "checker")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run performs one check cycle. It never returns an error: every failure mode
// collapses into OutcomeFailed so the controller only ever handles a Result.
func (c *Checker) Run(ctx context.Context) Result {
	logger := logging.WithContext(ctx, c.logger)

	if err := c.resolveTool(ctx); err != nil {
		// Tool absent means the feature is unavailable, not broken.
		logger.Debug("update tool not on PATH", slog.String("tool", c.tool))
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	c.syncDatabase(ctx, logger)

	output, err := c.queryPending(ctx)
	if err != nil {
		logger.Warn("update query failed", slog.Any("error", err))
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	records := ParseRecords(output)
	if len(records) == 0 {
		return Result{Outcome: OutcomeNoneFound}
	}
	return Result{Outcome: OutcomeFound, Records: records}
}

// resolveTool probes PATH for the update tool under its own deadline. PATH
// lookups can stall on dead network mounts, so the probe runs in a goroutine
// and is abandoned once the presence timeout elapses.
func (c *Checker) resolveTool(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, c.presenceTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.lookPath(c.tool)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return services.Wrap(services.ErrUnavailable, "checker", "resolve tool", err)
		}
		return nil
	case <-probeCtx.Done():
		return services.Wrap(services.ErrTimeout, "checker", "resolve tool", probeCtx.Err())
	}
}

// syncDatabase refreshes the package database. Its exit status is deliberately
// ignored: a stale database still yields a usable query.
func (c *Checker) syncDatabase(ctx context.Context, logger *slog.Logger) {
	syncCtx, cancel := context.WithTimeout(ctx, c.syncTimeout)
	defer cancel()

	binary := c.tool
	args := []string{"-Sy"}
	if c.syncWithSudo {
		binary = "sudo"
		args = []string{c.tool, "-Sy"}
	}
	if _, err := c.exec.Run(syncCtx, binary, args); err != nil {
		logger.Debug("database sync failed, continuing", slog.Any("error", err))
	}
}

func (c *Checker) queryPending(ctx context.Context) (string, error) {
	queryCtx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	output, err := c.exec.Run(queryCtx, c.tool, []string{"-Qu"})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", services.Wrap(services.ErrTimeout, "checker", "query pending updates", err)
		}
		return "", services.Wrap(services.ErrExternalTool, "checker", "query pending updates", err)
	}
	return output, nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if ctx.Err() != nil {
		return stdout.String(), ctx.Err()
	}
	return stdout.String(), err
}
