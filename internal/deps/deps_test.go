package deps_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"traynote/internal/config"
	"traynote/internal/deps"
)

func TestCheckReportsMissingBinary(t *testing.T) {
	statuses := deps.Check([]deps.Requirement{
		{Name: "update tool", Command: "definitely-not-a-real-binary-12345"},
	})
	if len(statuses) != 1 {
		t.Fatalf("expected one status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("expected binary to be reported missing")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
}

func TestCheckReportsAvailableBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test fixture targets unix shells")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "faketool")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("PATH", dir)

	statuses := deps.Check([]deps.Requirement{{Name: "update tool", Command: "faketool"}})
	if !statuses[0].Available {
		t.Fatalf("expected faketool available: %+v", statuses[0])
	}
}

func TestCheckHandlesUnconfiguredCommand(t *testing.T) {
	statuses := deps.Check([]deps.Requirement{{Name: "terminal", Command: "   "}})
	if statuses[0].Available {
		t.Fatal("expected unconfigured command to be unavailable")
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestForConfigListsToolAndTerminals(t *testing.T) {
	cfg := config.Default()
	reqs := deps.ForConfig(&cfg)

	if reqs[0].Command != "yay" || reqs[0].Optional {
		t.Fatalf("expected required update tool first, got %+v", reqs[0])
	}
	if len(reqs) != 1+len(cfg.Session.Terminals) {
		t.Fatalf("expected one requirement per terminal, got %d", len(reqs))
	}
	for _, req := range reqs[1:] {
		if !req.Optional {
			t.Fatalf("terminals should be optional: %+v", req)
		}
	}
}
