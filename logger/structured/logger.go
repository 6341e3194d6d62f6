// Package structured adapts log/slog to logger.Logger.
//
// The first argument becomes the record message when it is a string; the remaining
// arguments are passed to slog as alternating keys and values.
package structured

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pwnedgod/synchro/logger"
)

type slogLogger struct {
	l *slog.Logger
}

func NewLogger(l *slog.Logger) logger.Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

// NewTintLogger writes colored, human readable lines to w.
func NewTintLogger(w io.Writer, level slog.Level) logger.Logger {
	return NewLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})))
}

func (l slogLogger) Info(args ...any) {
	l.log(slog.LevelInfo, args)
}

func (l slogLogger) Debug(args ...any) {
	l.log(slog.LevelDebug, args)
}

func (l slogLogger) Error(args ...any) {
	l.log(slog.LevelError, args)
}

func (l slogLogger) log(level slog.Level, args []any) {
	ctx := context.Background()
	if !l.l.Enabled(ctx, level) {
		return
	}

	if len(args) == 0 {
		l.l.Log(ctx, level, "")
		return
	}

	msg, ok := args[0].(string)
	if !ok {
		msg = fmt.Sprint(args[0])
	}
	l.l.Log(ctx, level, msg, args[1:]...)
}
