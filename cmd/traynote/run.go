package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"traynote/internal/animator"
	"traynote/internal/config"
	"traynote/internal/deps"
	"traynote/internal/history"
	"traynote/internal/instance"
	"traynote/internal/logging"
	"traynote/internal/notifier"
	"traynote/internal/settings"
	"traynote/internal/tray"
	"traynote/internal/updates"
)

// runNotifier wires the application together and blocks inside the tray main
// loop until quit or signal. Fatal startup conditions (second instance, no
// surface) return an error so main exits non-zero before any state changes.
func runNotifier(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	guard := instance.New(cfg.Paths.LockFile, logger)
	ok, err := guard.Acquire()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("traynote is already running")
	}
	defer guard.Release()

	if !surfaceAvailable() {
		return errors.New("no status-indicator surface available on this system")
	}

	logToolAvailability(cfg, logger)

	store := settings.Load(cfg.Paths.SettingsFile, logger)

	icon, err := animator.LoadIcon(cfg.Paths.IconFile)
	if err != nil {
		logger.Warn("using built-in icon", slog.Any("error", err))
	}
	anim := animator.New(icon)

	checker := updates.NewChecker(cfg, logger)

	opts := []notifier.Option{}
	hist, err := history.Open(cfg.HistoryDBPath(), cfg.Updates.HistoryRetention)
	if err != nil {
		// History is advisory; the notifier runs without it.
		logger.Warn("check history disabled", slog.Any("error", err))
	} else {
		defer hist.Close()
		opts = append(opts, notifier.WithHistory(hist))
	}

	var controller *notifier.Controller
	surface := tray.New(logger, func(id string) {
		controller.HandleMenu(id)
	})

	controller, err = notifier.New(cfg, surface, store, checker, anim, logger, opts...)
	if err != nil {
		return err
	}

	onReady := func() {
		if err := controller.Start(ctx); err != nil {
			logger.Error("start controller", slog.Any("error", err))
			surface.Quit()
			return
		}
		logger.Info("traynote started",
			slog.String("lock", guard.Path()),
			slog.Duration("check_interval", store.CheckInterval()))
		go func() {
			select {
			case <-ctx.Done():
			case <-controller.Done():
			}
			surface.Quit()
		}()
	}

	// Blocks until Quit. Must stay on the main goroutine.
	surface.Run(onReady, func() {})

	controller.Stop()
	logger.Info("traynote shut down")
	return nil
}

// surfaceAvailable reports whether a system tray can exist at all. On Linux
// that means a display server session; elsewhere the tray library probes at
// startup.
func surfaceAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func logToolAvailability(cfg *config.Config, logger *slog.Logger) {
	for _, status := range deps.Check(deps.ForConfig(cfg)) {
		if status.Available {
			continue
		}
		// Missing binaries disable features; they never block startup.
		logger.Warn("external program unavailable",
			slog.String("name", status.Name),
			slog.String("command", status.Command),
			slog.String("detail", status.Detail))
	}
}
