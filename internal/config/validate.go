package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateUpdates(); err != nil {
		return err
	}
	if err := c.validateSession(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateUpdates() error {
	if c.Updates.Tool == "" {
		return errors.New("updates.tool must be set")
	}
	if c.Updates.SyncTimeout > c.Updates.CheckTimeout {
		return fmt.Errorf("updates.sync_timeout (%d) must not exceed updates.check_timeout (%d)", c.Updates.SyncTimeout, c.Updates.CheckTimeout)
	}
	return nil
}

func (c *Config) validateSession() error {
	if len(c.Session.Terminals) == 0 {
		return errors.New("session.terminals must list at least one terminal program")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
