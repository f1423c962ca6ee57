// Package logging assembles structured slog loggers and formatting helpers used
// across remanifest.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so a run can tag every log line
// with its run ID. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// records with the same shape as the rest of the tool.
package logging
