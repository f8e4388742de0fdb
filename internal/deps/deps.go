// Package deps reports the availability of the external programs traynote
// shells out to. Absence is never fatal: a missing update tool disables
// checking, a missing terminal shortens the session fallback list.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"traynote/internal/config"
)

// Requirement defines an external program traynote relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// ForConfig builds the requirement list for the given configuration: the
// update tool plus every configured terminal program.
func ForConfig(cfg *config.Config) []Requirement {
	reqs := []Requirement{
		{
			Name:        "update tool",
			Command:     cfg.Updates.Tool,
			Description: "queried for pending package updates",
		},
	}
	for _, term := range cfg.Session.Terminals {
		reqs = append(reqs, Requirement{
			Name:        "terminal",
			Command:     term,
			Description: "hosts interactive update sessions",
			Optional:    true,
		})
	}
	return reqs
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
