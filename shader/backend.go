// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"

	"github.com/gogpu/gpuutil/device"
)

// Request is the input to a Backend.
type Request struct {
	Source string
	Stage  device.Stage

	// EntryPoint selects one stage function by name. Empty selects the
	// first function declared for the stage.
	EntryPoint string

	Flags Flags
}

// Output is what a Backend produced. Empty Bytecode means the compile failed;
// Diagnostics then explain why.
type Output struct {
	Bytecode    []byte
	EntryPoint  string
	Diagnostics []Diagnostic
}

// Backend is an offline shader compiler.
//
// Compile must not retain Request.Source or the returned bytecode.
// Implementations are safe for concurrent use.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// Compile translates source for one stage.
	Compile(req Request) Output
}

// Target selects the bytecode format a backend emits.
type Target uint8

const (
	// TargetSPIRV emits SPIR-V, consumed by the wgpu device backend.
	TargetSPIRV Target = iota

	// TargetDXIL emits a DXIL container for Direct3D 12. No device in this
	// module consumes it; use it with Compiler.CompileBytecode for caching.
	TargetDXIL
)

func (t Target) String() string {
	switch t {
	case TargetSPIRV:
		return "spirv"
	case TargetDXIL:
		return "dxil"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}
