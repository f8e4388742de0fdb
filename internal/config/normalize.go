package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeUpdates()
	c.normalizeSession()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.SettingsFile) == "" {
		c.Paths.SettingsFile = defaultSettingsFile
	}
	if c.Paths.SettingsFile, err = expandPath(c.Paths.SettingsFile); err != nil {
		return fmt.Errorf("paths.settings_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.IconFile) != "" {
		if c.Paths.IconFile, err = expandPath(c.Paths.IconFile); err != nil {
			return fmt.Errorf("paths.icon_file: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.LockFile) == "" {
		c.Paths.LockFile = defaultLockFile()
	}
	if c.Paths.LockFile, err = expandPath(c.Paths.LockFile); err != nil {
		return fmt.Errorf("paths.lock_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeUpdates() {
	c.Updates.Tool = strings.TrimSpace(c.Updates.Tool)
	if c.Updates.Tool == "" {
		c.Updates.Tool = defaultUpdateTool
	}
	if c.Updates.SyncTimeout <= 0 {
		c.Updates.SyncTimeout = defaultSyncTimeout
	}
	if c.Updates.CheckTimeout <= 0 {
		c.Updates.CheckTimeout = defaultCheckTimeout
	}
	if c.Updates.PresenceTimeout <= 0 {
		c.Updates.PresenceTimeout = defaultPresenceTimeout
	}
	if c.Updates.HistoryRetention <= 0 {
		c.Updates.HistoryRetention = defaultHistoryRetention
	}
}

func (c *Config) normalizeSession() {
	terminals := make([]string, 0, len(c.Session.Terminals))
	for _, term := range c.Session.Terminals {
		if trimmed := strings.TrimSpace(term); trimmed != "" {
			terminals = append(terminals, trimmed)
		}
	}
	if len(terminals) == 0 {
		terminals = defaultTerminals()
	}
	c.Session.Terminals = terminals
	if c.Session.RecheckDelay <= 0 {
		c.Session.RecheckDelay = defaultRecheckDelay
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
