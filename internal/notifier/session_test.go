package notifier

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"traynote/internal/logging"
	"traynote/internal/services"
)

func nopLogger() *slog.Logger {
	return logging.NewNop()
}

func TestTerminalArgsShapes(t *testing.T) {
	script := `echo hi`
	gnome := terminalArgs("gnome-terminal", script)
	if gnome[0] != "--" || gnome[1] != "bash" || gnome[2] != "-c" {
		t.Fatalf("unexpected gnome-terminal args: %v", gnome)
	}
	konsole := terminalArgs("konsole", script)
	if konsole[0] != "-e" || konsole[1] != "bash" {
		t.Fatalf("unexpected konsole args: %v", konsole)
	}
	if terminalArgs("xterm", script)[0] != "-e" {
		t.Fatal("xterm should use -e")
	}
}

func TestLauncherFallsBackToNextTerminal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test fixture targets unix shells")
	}
	dir := t.TempDir()
	fake := filepath.Join(dir, "konsole")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("PATH", dir)

	launcher := &terminalLauncher{
		terminals: []string{"gnome-terminal", "konsole"},
		tool:      "yay",
		logger:    nopLogger(),
	}

	wait, err := launcher.Launch()
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if err := wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

func TestLauncherFailsWhenNoTerminalExists(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	launcher := &terminalLauncher{
		terminals: []string{"gnome-terminal", "konsole", "xterm"},
		tool:      "yay",
		logger:    nopLogger(),
	}

	if _, err := launcher.Launch(); !errors.Is(err, services.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
