package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerFormatsRecord(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar)).With(slog.String(FieldComponent, "checker"))

	logger.Info("check finished", slog.Int("updates", 3), slog.String("tool", "yay"))

	line := buf.String()
	if !strings.Contains(line, "INFO checker: check finished") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "updates=3") || !strings.Contains(line, "tool=yay") {
		t.Fatalf("missing attrs: %q", line)
	}
}

func TestConsoleHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Warn("session", slog.String("terminal", "gnome terminal"))

	if !strings.Contains(buf.String(), `terminal="gnome terminal"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestConsoleHandlerFlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Info("tick", slog.Group("anim", slog.Float64("brightness", 0.75)))

	if !strings.Contains(buf.String(), "anim.brightness=0.75") {
		t.Fatalf("expected flattened group key, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWithContextAddsCheckID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	ctx := ContextWithCheckID(context.Background(), "abc-123")
	WithContext(ctx, logger).Info("dispatch")

	if !strings.Contains(buf.String(), "check_id=abc-123") {
		t.Fatalf("expected check id attr, got %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not enable any level")
	}
}
