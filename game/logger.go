package game

import (
	"log/slog"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by the simulation and the polygon viewer.
// By default nothing is logged; pass nil to restore that behavior.
//
// Levels used:
//   - [slog.LevelDebug]: per-event diagnostics (fire, reset, bullet despawn)
//   - [slog.LevelInfo]: lifecycle (simulation created)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current simulation logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
