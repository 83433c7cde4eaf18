// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/logging"
	"github.com/gogpu/gpuutil/internal/textutil"
)

// CompiledShader is a live shader object plus what produced it.
type CompiledShader struct {
	// Shader is the device object. The caller owns it and releases it with
	// device.Device.Release.
	Shader device.Shader

	Stage      device.Stage
	EntryPoint string

	// Bytecode is set only when WithBytecode was passed.
	Bytecode []byte

	// Diagnostics holds the warnings of a successful compile.
	Diagnostics []Diagnostic
}

// Warnings returns the warning diagnostics.
func (cs *CompiledShader) Warnings() []Diagnostic {
	var w []Diagnostic
	for _, d := range cs.Diagnostics {
		if d.Severity == SeverityWarning {
			w = append(w, d)
		}
	}
	return w
}

// Bytecode is an offline compile result, suitable for caching and for a
// later Compiler.CreateShader.
type Bytecode struct {
	Stage       device.Stage
	EntryPoint  string
	Code        []byte
	Diagnostics []Diagnostic
}

// Compiler compiles shader source and creates device shader objects.
// It keeps no state between compiles and is safe for concurrent use as long
// as its device is.
type Compiler struct {
	dev     device.Device
	backend Backend
	logger  *slog.Logger

	debugMu  sync.Mutex
	debugOut io.Writer
}

// NewCompiler returns a compiler creating shaders on dev.
func NewCompiler(dev device.Device, opts ...Option) (*Compiler, error) {
	if dev == nil {
		return nil, device.ErrNilDevice
	}
	o := options{target: TargetSPIRV}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = NewNagaBackend(o.target)
	}
	return &Compiler{
		dev:      dev,
		backend:  o.backend,
		logger:   o.logger,
		debugOut: o.debugOut,
	}, nil
}

// Device returns the device shaders are created on.
func (c *Compiler) Device() device.Device { return c.dev }

// Backend returns the offline compiler in use.
func (c *Compiler) Backend() Backend { return c.backend }

func (c *Compiler) log() *slog.Logger { return logging.Or(c.logger) }

// Compile compiles source for stage and creates the shader object.
//
// A source the backend rejects yields a nil shader and a *CompileError; the
// device is not called. A device refusal yields a nil shader and the device
// error. Warnings alone do not fail the compile unless FlagWarningsAsErrors
// is set.
func (c *Compiler) Compile(source []byte, stage device.Stage, flags Flags, opts ...CompileOption) (*CompiledShader, error) {
	var co compileOptions
	for _, opt := range opts {
		opt(&co)
	}
	bc, err := c.compile(source, stage, flags, co.entryPoint)
	if err != nil {
		return nil, err
	}
	return c.create(bc, co)
}

// CompileString is Compile for source held in a string.
func (c *Compiler) CompileString(source string, stage device.Stage, flags Flags, opts ...CompileOption) (*CompiledShader, error) {
	return c.Compile([]byte(source), stage, flags, opts...)
}

// CompileBytecode runs only the offline compiler. Diagnostics are reported
// the same way as for Compile. WithBytecode and WithLabel are ignored.
func (c *Compiler) CompileBytecode(source []byte, stage device.Stage, flags Flags, opts ...CompileOption) (*Bytecode, error) {
	var co compileOptions
	for _, opt := range opts {
		opt(&co)
	}
	return c.compile(source, stage, flags, co.entryPoint)
}

// CreateShader creates a shader object from previously compiled bytecode.
func (c *Compiler) CreateShader(bc *Bytecode, opts ...CompileOption) (*CompiledShader, error) {
	if bc == nil || len(bc.Code) == 0 {
		return nil, fmt.Errorf("shader: %w", device.ErrInvalidBytecode)
	}
	var co compileOptions
	for _, opt := range opts {
		opt(&co)
	}
	return c.create(bc, co)
}

func (c *Compiler) compile(source []byte, stage device.Stage, flags Flags, entryPoint string) (*Bytecode, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("shader: %w: %v", device.ErrInvalidDescriptor, stage)
	}

	text, err := decodeSource(source)
	if err != nil {
		diags := []Diagnostic{errorDiagnostic(err)}
		c.report(stage, "", diags)
		return nil, &CompileError{Stage: stage, Diagnostics: diags}
	}

	out := c.backend.Compile(Request{
		Source:     text,
		Stage:      stage,
		EntryPoint: entryPoint,
		Flags:      flags,
	})
	diags := out.Diagnostics

	if flags.Has(FlagWarningsAsErrors) && len(diags) > 0 {
		for i := range diags {
			diags[i].Severity = SeverityError
		}
		out.Bytecode = nil
	}
	if len(out.Bytecode) == 0 && !HasErrors(diags) {
		diags = append(diags, Diagnostic{Severity: SeverityError, Message: c.backend.Name() + " produced no bytecode"})
	}

	c.report(stage, text, diags)
	if len(out.Bytecode) == 0 {
		return nil, &CompileError{Stage: stage, Diagnostics: diags}
	}

	entry := out.EntryPoint
	if entry == "" {
		entry = entryPoint
	}
	return &Bytecode{
		Stage:       stage,
		EntryPoint:  entry,
		Code:        out.Bytecode,
		Diagnostics: diags,
	}, nil
}

func (c *Compiler) create(bc *Bytecode, co compileOptions) (*CompiledShader, error) {
	desc := &device.ShaderDesc{
		Label:      co.label,
		Stage:      bc.Stage,
		Bytecode:   bc.Code,
		EntryPoint: bc.EntryPoint,
	}
	if desc.Label == "" {
		desc.Label = bc.Stage.Profile() + ":" + desc.Entry()
	}

	s, err := c.dev.CreateShader(desc)
	if err != nil {
		c.log().Error("shader: device rejected bytecode", "stage", bc.Stage, "label", desc.Label, "bytes", len(bc.Code), "err", err)
		return nil, fmt.Errorf("shader: create %v shader: %w", bc.Stage, err)
	}

	cs := &CompiledShader{
		Shader:      s,
		Stage:       bc.Stage,
		EntryPoint:  desc.Entry(),
		Diagnostics: bc.Diagnostics,
	}
	if co.keepBytecode {
		cs.Bytecode = slices.Clone(bc.Code)
	}
	return cs, nil
}

// report logs diagnostics with the numbered source and mirrors them to the
// debug writer. Nothing is emitted for a clean compile.
func (c *Compiler) report(stage device.Stage, source string, diags []Diagnostic) {
	if len(diags) == 0 {
		return
	}
	level := slog.LevelWarn
	if HasErrors(diags) {
		level = slog.LevelError
	}
	numbered := textutil.LineNumbered(source)
	formatted := FormatDiagnostics(diags)

	attrs := []any{
		"stage", stage,
		"profile", stage.Profile(),
		"backend", c.backend.Name(),
		"diagnostics", formatted,
	}
	for _, d := range diags {
		if d.Line > 0 {
			attrs = append(attrs, "near", textutil.Excerpt(source, d.Line, 2))
			break
		}
	}
	attrs = append(attrs, "source", numbered)
	c.log().Log(context.Background(), level, "shader: compiler output", attrs...)

	if c.debugOut == nil {
		return
	}
	c.debugMu.Lock()
	defer c.debugMu.Unlock()
	_, _ = fmt.Fprintf(c.debugOut, "--- %v shader (%s) ---\n%s%s", stage, stage.Profile(), numbered, formatted)
}
