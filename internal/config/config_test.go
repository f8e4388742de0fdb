package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"traynote/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Updates.Tool != "yay" {
		t.Fatalf("unexpected update tool: %q", cfg.Updates.Tool)
	}
	if cfg.Updates.SyncTimeout != 30 || cfg.Updates.CheckTimeout != 60 {
		t.Fatalf("unexpected timeouts: sync=%d check=%d", cfg.Updates.SyncTimeout, cfg.Updates.CheckTimeout)
	}
	if !cfg.Updates.SyncWithSudo {
		t.Fatal("expected sync_with_sudo default true")
	}
	wantSettings := filepath.Join(tempHome, ".config", "traynote", "settings.json")
	if cfg.Paths.SettingsFile != wantSettings {
		t.Fatalf("unexpected settings file: got %q want %q", cfg.Paths.SettingsFile, wantSettings)
	}
	wantTerminals := []string{"gnome-terminal", "konsole", "xterm"}
	if len(cfg.Session.Terminals) != len(wantTerminals) {
		t.Fatalf("unexpected terminals: %v", cfg.Session.Terminals)
	}
	for i, term := range wantTerminals {
		if cfg.Session.Terminals[i] != term {
			t.Fatalf("unexpected terminal at %d: got %q want %q", i, cfg.Session.Terminals[i], term)
		}
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[updates]",
		`tool = "  paru "`,
		"sync_timeout = 10",
		"[session]",
		`terminals = ["alacritty", "  ", "xterm"]`,
		"[logging]",
		`format = "JSON"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Updates.Tool != "paru" {
		t.Fatalf("expected trimmed tool, got %q", cfg.Updates.Tool)
	}
	if cfg.Updates.SyncTimeout != 10 {
		t.Fatalf("unexpected sync timeout: %d", cfg.Updates.SyncTimeout)
	}
	if len(cfg.Session.Terminals) != 2 || cfg.Session.Terminals[0] != "alacritty" {
		t.Fatalf("unexpected terminals: %v", cfg.Session.Terminals)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased format, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty tool", func(c *config.Config) { c.Updates.Tool = "" }},
		{"sync exceeds check", func(c *config.Config) { c.Updates.SyncTimeout = 120 }},
		{"no terminals", func(c *config.Config) { c.Session.Terminals = nil }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "yaml" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[updates]") {
		t.Fatal("sample missing updates section")
	}
}
