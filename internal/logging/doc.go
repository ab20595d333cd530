// Package logging assembles the structured slog loggers shared by every
// component in the pipeline.
//
// It centralizes level and format plumbing and exposes small attribute
// helpers plus a no-op logger for tests and wiring code that cannot fail.
// Components receive their logger explicitly; there is no process-wide
// logger registry.
package logging
