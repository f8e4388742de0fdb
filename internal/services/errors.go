package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying failures at worker boundaries. Background workers
// tag errors with one of these before handing them back so the controller never
// sees raw exec or I/O faults.
var (
	// ErrExternalTool marks failures of the update tool or terminal programs.
	ErrExternalTool = errors.New("external tool error")
	// ErrTimeout marks sub-steps cut off by their wall-clock deadline.
	ErrTimeout = errors.New("timeout")
	// ErrUnavailable marks features disabled because their binary is absent.
	ErrUnavailable = errors.New("unavailable")
	// ErrContention marks operations refused because a previous one is still active.
	ErrContention = errors.New("already in progress")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation string, err error) error {
	detail := buildDetail(component, operation)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation string) string {
	parts := make([]string, 0, 2)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "worker failure"
	}
	return strings.Join(parts, ": ")
}
