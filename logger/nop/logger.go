// Package nop provides a logger.Logger that discards every line.
package nop

import "github.com/pwnedgod/synchro/logger"

type nopLogger struct {
}

func NewLogger() logger.Logger {
	return nopLogger{}
}

func (nopLogger) Info(...any) {}

func (nopLogger) Debug(...any) {}

func (nopLogger) Error(...any) {}
