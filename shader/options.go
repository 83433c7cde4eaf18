// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"io"
	"log/slog"
)

// Option configures a Compiler.
type Option func(*options)

type options struct {
	backend  Backend
	target   Target
	logger   *slog.Logger
	debugOut io.Writer
}

// WithBackend replaces the default naga backend.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithTarget selects the bytecode format of the default naga backend.
// It has no effect together with WithBackend.
func WithTarget(t Target) Option {
	return func(o *options) {
		o.target = t
	}
}

// WithLogger sets a logger for this compiler only.
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

// CompileOption adjusts a single compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	keepBytecode bool
	label        string
	entryPoint   string
}

// WithBytecode returns the compiled bytecode in CompiledShader.Bytecode.
func WithBytecode() CompileOption {
	return func(o *compileOptions) {
		o.keepBytecode = true
	}
}

// WithLabel sets the debug label of the created shader object.
func WithLabel(label string) CompileOption {
	return func(o *compileOptions) {
		o.label = label
	}
}

// WithEntryPoint selects the stage function by name.
func WithEntryPoint(name string) CompileOption {
	return func(o *compileOptions) {
		o.entryPoint = name
	}
}
