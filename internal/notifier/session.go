package notifier

import (
	"fmt"
	"log/slog"
	"os/exec"

	"traynote/internal/config"
	"traynote/internal/logging"
	"traynote/internal/services"
)

// SessionLauncher spawns an interactive terminal session running the update
// tool. Launch returns a wait function that blocks until the session ends.
type SessionLauncher interface {
	Launch() (wait func() error, err error)
}

// terminalLauncher tries an ordered list of terminal emulators; the first one
// that starts wins.
type terminalLauncher struct {
	terminals []string
	tool      string
	logger    *slog.Logger
}

// NewTerminalLauncher builds the production launcher from configuration.
func NewTerminalLauncher(cfg *config.Config, logger *slog.Logger) SessionLauncher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &terminalLauncher{
		terminals: cfg.Session.Terminals,
		tool:      cfg.Updates.Tool,
		logger:    logger.With(slog.String(logging.FieldComponent, "session")),
	}
}

func (l *terminalLauncher) Launch() (func() error, error) {
	script := fmt.Sprintf(
		`echo "Running %s package updates..."; %s; echo "Press Enter to close..."; read`,
		l.tool, l.tool,
	)

	for _, terminal := range l.terminals {
		cmd := exec.Command(terminal, terminalArgs(terminal, script)...) //nolint:gosec
		if err := cmd.Start(); err != nil {
			l.logger.Debug("terminal unavailable, trying next",
				slog.String("terminal", terminal), slog.Any("error", err))
			continue
		}
		l.logger.Info("interactive session started", slog.String("terminal", terminal))
		return cmd.Wait, nil
	}

	return nil, services.Wrap(services.ErrUnavailable, "session", "no terminal emulator found", nil)
}

// terminalArgs maps a terminal program to its invocation shape. gnome-terminal
// takes the command after a "--" sentinel; konsole and xterm use -e.
func terminalArgs(terminal, script string) []string {
	switch terminal {
	case "gnome-terminal":
		return []string{"--", "bash", "-c", script}
	default:
		return []string{"-e", "bash", "-c", script}
	}
}
