package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"traynote/internal/history"
)

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"--config", target, "config", "init"})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}

func TestConfigPathReportsMissingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"--config", target, "config", "path"})
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if !strings.Contains(out, target) || !strings.Contains(out, "not created yet") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfigShowRendersTOML(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"--config", target, "config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "[updates]") || !strings.Contains(out, "yay") {
		t.Fatalf("expected effective config in output, got %q", out)
	}
}

func TestRenderHistoryColumns(t *testing.T) {
	now := time.Now()
	entries := []history.Entry{
		{
			CheckID:     "0b5e7c1a-3f62-4f0e-9a51-000000000000",
			StartedAt:   now.Add(-3 * time.Second),
			FinishedAt:  now,
			Outcome:     "found",
			UpdateCount: 4,
		},
	}

	out := renderHistory(entries, false)
	for _, want := range []string{"Check", "Outcome", "0b5e7c1a", "found", "4", "3s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered history:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0b5e7c1a-3f62") {
		t.Fatalf("check id should be truncated:\n%s", out)
	}
}

func TestRenderHistoryRelativeTimesOnTerminal(t *testing.T) {
	now := time.Now()
	entries := []history.Entry{
		{
			CheckID:    "abc",
			StartedAt:  now.Add(-5*time.Minute - 2*time.Second),
			FinishedAt: now.Add(-5 * time.Minute),
			Outcome:    "none",
		},
	}

	out := renderHistory(entries, true)
	if !strings.Contains(out, "minutes ago") {
		t.Fatalf("expected relative timestamp on a terminal:\n%s", out)
	}
}

func TestShortCheckID(t *testing.T) {
	if got := shortCheckID("abcd"); got != "abcd" {
		t.Fatalf("short ids pass through, got %q", got)
	}
	if got := shortCheckID("0123456789"); got != "01234567" {
		t.Fatalf("long ids truncate to 8, got %q", got)
	}
}
