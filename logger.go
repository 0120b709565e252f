package canvas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers
// skip attribute formatting entirely.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var logPtr atomic.Pointer[slog.Logger]

func init() {
	logPtr.Store(slog.New(discardHandler{}))
}

// SetLogger installs the logger used for diagnostics (failed window or
// renderer creation, image and font load errors). The package is
// silent by default. Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	logPtr.Store(l)
}

func logger() *slog.Logger { return logPtr.Load() }
