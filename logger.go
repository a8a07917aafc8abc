package strata

import (
	"log/slog"

	"github.com/strata-gl/strata/internal/logging"
)

// SetLogger configures the logger for strata and all its sub-packages.
// By default, strata produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by strata:
//   - [slog.LevelDebug]: internal diagnostics (raster cache populate and
//     sweep decisions, ruler cache evictions, save stack depth)
//   - [slog.LevelInfo]: important lifecycle events (font registration,
//     raster cache cleared on device pixel ratio change)
//   - [slog.LevelWarn]: non-fatal issues (abandoned frames, oversized
//     pictures skipped by the raster cache)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	strata.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	strata.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by strata. Sub-packages (scene,
// rastercache, ruler, render) share the same logger configuration without
// introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
