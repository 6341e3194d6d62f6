package std

import (
	"fmt"
	"io"
	"os"

	"github.com/pwnedgod/synchro/logger"
)

type stdLogger struct {
	out io.Writer
	err io.Writer
}

func NewLogger() logger.Logger {
	return NewLoggerWithWriters(os.Stdout, os.Stderr)
}

// NewLoggerWithWriters writes Info and Debug lines to out and Error lines to err.
func NewLoggerWithWriters(out, err io.Writer) logger.Logger {
	return &stdLogger{
		out: out,
		err: err,
	}
}

func (l stdLogger) Info(args ...interface{}) {
	fmt.Fprintln(l.out, args...)
}

func (l stdLogger) Debug(args ...interface{}) {
	fmt.Fprintln(l.out, args...)
}

func (l stdLogger) Error(args ...interface{}) {
	fmt.Fprintln(l.err, args...)
}
