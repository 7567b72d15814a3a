package ggart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers skip
// building attributes when logging is off.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func newDiscardLogger() *slog.Logger { return slog.New(discardHandler{}) }

// current holds the active logger; it is never nil.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newDiscardLogger())
}

// SetLogger installs the logger used by ggart and its sub-packages.
// ggart is silent until SetLogger is called; passing nil silences it again.
//
// Levels:
//   - [slog.LevelDebug]: figure geometry, primitive counts, encoder choice
//   - [slog.LevelInfo]: files written, viewer opened
//
// Example:
//
//	ggart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newDiscardLogger()
	}
	current.Store(l)
}

// Logger returns the logger installed with SetLogger.
// It is safe for concurrent use and never returns nil.
func Logger() *slog.Logger {
	return current.Load()
}
