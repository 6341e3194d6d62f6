// Package logger is the logging seam of the keyed lock. Arguments follow the
// slog convention: a message followed by alternating key/value pairs.
package logger

// Logger receives acquire and release events at Debug and lock failures at
// Error. Implementations must be safe for concurrent use.
type Logger interface {
	Info(...any)
	Debug(...any)
	Error(...any)
}
