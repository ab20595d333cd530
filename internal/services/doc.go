// Package services defines the shared error taxonomy for pipeline stages and
// the adapters that drive external tools.
//
// Every failure raised by a stage is wrapped with a sentinel marker plus
// stage/operation context, so callers can classify errors with errors.Is
// without parsing messages.
package services
