package services_test

import (
	"errors"
	"os/exec"
	"testing"

	"traynote/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := exec.ErrNotFound
	err := services.Wrap(services.ErrUnavailable, "checker", "resolve tool", base)
	if !errors.Is(err, services.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped base error, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "session", "launch", nil)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if err.Error() != "external tool error: session: launch" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapWithoutContext(t *testing.T) {
	err := services.Wrap(services.ErrTimeout, "", "", nil)
	if err.Error() != "timeout: worker failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
