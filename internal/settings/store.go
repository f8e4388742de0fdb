package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"traynote/internal/logging"
)

// DefaultCheckInterval applies when no settings file exists.
const DefaultCheckInterval = time.Hour

// document is the on-disk shape: a flat key-value JSON object.
type document struct {
	CheckInterval int    `json:"check_interval"`
	LastCheck     string `json:"last_check,omitempty"`
}

// Store persists the runtime settings the user changes from the tray menu.
// Settings are advisory: read and write failures fall back to defaults or are
// swallowed, never surfaced as fatal errors.
type Store struct {
	path   string
	logger *slog.Logger

	mu            sync.Mutex
	checkInterval time.Duration
	lastCheck     time.Time
}

// Load reads the settings file at path, merging any valid document over the
// defaults. A missing or corrupt file is not an error; the parent directory is
// created so later writes succeed.
func Load(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Store{
		path:          path,
		logger:        logger.With(slog.String(logging.FieldComponent, "settings")),
		checkInterval: DefaultCheckInterval,
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Warn("failed to create settings directory", slog.Any("error", err))
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read settings, using defaults", slog.Any("error", err))
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("corrupt settings file, using defaults", slog.Any("error", err))
		return s
	}
	if doc.CheckInterval > 0 {
		s.checkInterval = time.Duration(doc.CheckInterval) * time.Second
	}
	if doc.LastCheck != "" {
		if ts, err := time.Parse(time.RFC3339, doc.LastCheck); err == nil {
			s.lastCheck = ts
		} else {
			s.logger.Warn("invalid last_check timestamp, ignoring", slog.String("value", doc.LastCheck))
		}
	}
	return s
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// CheckInterval returns the configured polling interval.
func (s *Store) CheckInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkInterval
}

// SetCheckInterval updates the polling interval and persists immediately.
func (s *Store) SetCheckInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	s.mu.Lock()
	s.checkInterval = interval
	s.persistLocked()
	s.mu.Unlock()
}

// LastCheck returns the timestamp of the most recent completed check, if any.
func (s *Store) LastCheck() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheck, !s.lastCheck.IsZero()
}

// SetLastCheck records the completion time of a check and persists immediately.
func (s *Store) SetLastCheck(ts time.Time) {
	s.mu.Lock()
	s.lastCheck = ts
	s.persistLocked()
	s.mu.Unlock()
}

func (s *Store) persistLocked() {
	doc := document{
		CheckInterval: int(s.checkInterval / time.Second),
	}
	if !s.lastCheck.IsZero() {
		doc.LastCheck = s.lastCheck.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Warn("failed to encode settings", slog.Any("error", err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Warn("failed to write settings", slog.Any("error", err))
	}
}
