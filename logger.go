// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuutil

import (
	"log/slog"

	"github.com/gogpu/gpuutil/internal/logging"
)

// SetLogger configures the logger for gpuutil and all its sub-packages.
// By default, gpuutil produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gpuutil:
//   - [slog.LevelDebug]: stock catalog lifecycle
//   - [slog.LevelInfo]: context creation and device recovery
//   - [slog.LevelWarn]: shader compiler warnings, ignored double releases
//   - [slog.LevelError]: shader compile errors with the numbered source,
//     object creation failures
//
// Components created with their own WithLogger option keep that logger.
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	gpuutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by gpuutil.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
