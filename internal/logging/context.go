package logging

import "context"

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCheckID is the standardized structured logging key for check-cycle correlation ids.
	FieldCheckID = "check_id"
	// FieldOutcome is the standardized structured logging key for check outcomes.
	FieldOutcome = "outcome"
	// FieldStatus is the standardized structured logging key for notifier status values.
	FieldStatus = "status"
)

type checkIDKey struct{}

// ContextWithCheckID stores a check-cycle correlation id on the context.
func ContextWithCheckID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, checkIDKey{}, id)
}

// CheckIDFromContext extracts a check-cycle correlation id, if present.
func CheckIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(checkIDKey{}).(string)
	return id, ok && id != ""
}
