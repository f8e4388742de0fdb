package config

import (
	"os"
	"path/filepath"
)

const (
	defaultDataDir          = "~/.local/share/traynote"
	defaultLogDir           = "~/.local/share/traynote/logs"
	defaultSettingsFile     = "~/.config/traynote/settings.json"
	defaultUpdateTool       = "yay"
	defaultSyncTimeout      = 30
	defaultCheckTimeout     = 60
	defaultPresenceTimeout  = 5
	defaultHistoryRetention = 200
	defaultRecheckDelay     = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// defaultTerminals is the ordered fallback list for interactive sessions.
func defaultTerminals() []string {
	return []string{"gnome-terminal", "konsole", "xterm"}
}

func defaultLockFile() string {
	return filepath.Join(os.TempDir(), "traynote.lock")
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			LogDir:       defaultLogDir,
			SettingsFile: defaultSettingsFile,
			LockFile:     defaultLockFile(),
		},
		Updates: Updates{
			Tool:             defaultUpdateTool,
			SyncWithSudo:     true,
			SyncTimeout:      defaultSyncTimeout,
			CheckTimeout:     defaultCheckTimeout,
			PresenceTimeout:  defaultPresenceTimeout,
			HistoryRetention: defaultHistoryRetention,
		},
		Session: Session{
			Terminals:    defaultTerminals(),
			RecheckDelay: defaultRecheckDelay,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
