package updates

// Record describes one pending package update.
type Record struct {
	Name    string
	Version string
}

// Outcome classifies the result of a check cycle.
type Outcome int

const (
	// OutcomeFailed covers missing tools, timeouts, and non-zero exits.
	OutcomeFailed Outcome = iota
	// OutcomeNoneFound means the query succeeded and reported nothing pending.
	OutcomeNoneFound
	// OutcomeFound means at least one update is pending.
	OutcomeFound
)

// String returns the storage and logging label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNoneFound:
		return "none"
	default:
		return "failed"
	}
}

// ParseOutcome maps a storage label back to an Outcome.
func ParseOutcome(label string) Outcome {
	switch label {
	case "found":
		return OutcomeFound
	case "none":
		return OutcomeNoneFound
	default:
		return OutcomeFailed
	}
}

// Result is produced exactly once per check invocation.
type Result struct {
	Outcome Outcome
	Records []Record
	// Err carries the failure detail for logging. It never propagates past
	// the worker boundary as an error value.
	Err error
}
