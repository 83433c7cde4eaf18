// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuutil

import (
	"io"
	"log/slog"

	"github.com/gogpu/gpuutil/backend/wgpu"
	"github.com/gogpu/gpuutil/shader"
	"github.com/gogpu/gpuutil/stock"
)

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := gpuutil.New(dev,
//	    gpuutil.WithLogger(logger),
//	    gpuutil.WithCompilerOptions(shader.WithTarget(shader.TargetSPIRV)),
//	)
type Option func(*options)

type options struct {
	logger        *slog.Logger
	debugOut      io.Writer
	compilerOpts  []shader.Option
	deviceOpts    []wgpu.Option
	skipStockPool bool
	cacheShaders  bool
	cacheCapacity int
}

func defaultOptions() options {
	return options{}
}

// WithLogger sets the logger used by the context, its compiler and its stock
// pool. Without it they log through the logger installed with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithDebugOutput sets a writer that receives the line-numbered source and
// diagnostics of every compile that reports anything.
func WithDebugOutput(w io.Writer) Option {
	return func(o *options) {
		o.debugOut = w
	}
}

// WithCompilerOptions passes options to the shader compiler. They are applied
// after the context's own logger and debug output, so they take precedence.
func WithCompilerOptions(opts ...shader.Option) Option {
	return func(o *options) {
		o.compilerOpts = append(o.compilerOpts, opts...)
	}
}

// WithDeviceOptions passes options to the wgpu device built by
// NewFromProvider. New ignores them.
func WithDeviceOptions(opts ...wgpu.Option) Option {
	return func(o *options) {
		o.deviceOpts = append(o.deviceOpts, opts...)
	}
}

// WithoutStockPool defers stock object creation. The pool stays empty until
// Context.Recover is called.
func WithoutStockPool() Option {
	return func(o *options) {
		o.skipStockPool = true
	}
}

// WithBytecodeCache keeps up to capacity compiled bytecode results in
// Context.Shaders, 0 meaning unbounded. The cache survives Recover.
func WithBytecodeCache(capacity int) Option {
	return func(o *options) {
		o.cacheShaders = true
		o.cacheCapacity = capacity
	}
}

func (o *options) shaderOptions() []shader.Option {
	opts := make([]shader.Option, 0, len(o.compilerOpts)+2)
	if o.logger != nil {
		opts = append(opts, shader.WithLogger(o.logger))
	}
	if o.debugOut != nil {
		opts = append(opts, shader.WithDebugOutput(o.debugOut))
	}
	return append(opts, o.compilerOpts...)
}

func (o *options) stockOptions() []stock.Option {
	if o.logger == nil {
		return nil
	}
	return []stock.Option{stock.WithLogger(o.logger)}
}

func (o *options) wgpuOptions() []wgpu.Option {
	opts := make([]wgpu.Option, 0, len(o.deviceOpts)+1)
	if o.logger != nil {
		opts = append(opts, wgpu.WithLogger(o.logger))
	}
	return append(opts, o.deviceOpts...)
}
