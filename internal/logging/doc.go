// Package logging assembles the structured slog loggers used across traynote.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes helpers that tag log lines with the correlation id of the check
// cycle they belong to. Prefer these constructors over hand-rolled slog setup
// so every component emits records with the same shape.
package logging
