// Package logging provides a small structured-logging wrapper over log/slog.
//
// Packages that need a logger before Init has run (package-level loggers
// created at init time) still work: L returns a logger backed by a
// switchable handler that starts out as a plain stderr text handler and is
// swapped in place once Init configures the real one.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// KeyComponent is the field name every logger produced by L tags itself with.
const KeyComponent = "component"

type switchableState struct {
	current atomic.Value // slog.Handler
}

func (s *switchableState) set(h slog.Handler) { s.current.Store(h) }
func (s *switchableState) base() slog.Handler { return s.current.Load().(slog.Handler) }

// switchableHandler implements slog.Handler by delegating to whatever
// handler is currently installed in state, so a logger handed out before
// Init() still reflects the format/level configured afterward.
type switchableHandler struct {
	state  *switchableState
	attrs  []slog.Attr
	groups []string
}

func (h *switchableHandler) materialize() slog.Handler {
	handler := h.state.base()
	for _, g := range h.groups {
		handler = handler.WithGroup(g)
	}
	if len(h.attrs) > 0 {
		handler = handler.WithAttrs(h.attrs)
	}
	return handler
}

func (h *switchableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.materialize().Enabled(ctx, level)
}

func (h *switchableHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.materialize().Handle(ctx, r)
}

func (h *switchableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &switchableHandler{
		state:  h.state,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
		groups: h.groups,
	}
}

func (h *switchableHandler) WithGroup(name string) slog.Handler {
	return &switchableHandler{
		state:  h.state,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}

var root = &switchableState{}

func init() {
	root.set(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Init reconfigures the process-wide logging backend. format is "json" or
// "text"; level is one of debug/info/warn/error. Safe to call once at
// startup after flags/config are parsed; loggers already handed out via L
// pick up the change because they share the same switchableState.
func Init(format, level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	root.set(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L returns a logger tagged with the given component name.
func L(component string) *slog.Logger {
	h := &switchableHandler{state: root, attrs: []slog.Attr{slog.String(KeyComponent, component)}}
	return slog.New(h)
}
