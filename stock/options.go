// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import "log/slog"

// Option configures a Pool.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a logger for this pool only. By default the process-wide
// logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
