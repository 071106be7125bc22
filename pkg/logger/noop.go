package logger

import (
	"context"
	"log/slog"
)

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n noopHandler) WithAttrs([]slog.Attr) slog.Handler      { return n }
func (n noopHandler) WithGroup(string) slog.Handler           { return n }

// Noop returns a logger that discards all records.
func Noop() *slog.Logger {
	return slog.New(noopHandler{})
}

// OrNoop returns l, or a discarding logger when l is nil.
func OrNoop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Noop()
	}
	return l
}
