package ninebox

import (
	"log/slog"

	"github.com/gogpu/ninebox/internal/logging"
)

// SetLogger configures the logger for ninebox and all its sub-packages.
// By default, ninebox produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ninebox:
//   - [slog.LevelDebug]: per-event diagnostics (effects, coalesced events, fills)
//   - [slog.LevelInfo]: font context changes
//   - [slog.LevelWarn]: lock inputs that no longer resolve, persistence failures
//
// Example:
//
//	ninebox.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ninebox.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
