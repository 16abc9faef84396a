// Package goerror defines the structured error type shared by every layer.
//
// Primitives return plain sentinel errors; usecases wrap them with NewServer,
// NewInvalidInput or NewUnavailable so callers can pick a message and an exit
// status without losing errors.Is on the original cause.
package goerror
