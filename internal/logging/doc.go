// Package logging assembles the structured slog loggers used across imgpack.
//
// It owns the console and JSON handlers, centralizes level and format
// plumbing, and exposes component helpers so pipeline stages tag their log
// lines uniformly. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
