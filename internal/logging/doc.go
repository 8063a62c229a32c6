// Package logging assembles structured slog loggers used across whisperctl.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stderr plus an optional log file), and exposes small attribute helpers so
// components tag records with the same keys. Diagnostic logging here is
// separate from the user-facing activity log kept by the controller.
package logging
