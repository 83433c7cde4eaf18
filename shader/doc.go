// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader compiles shader source into device shader objects.
//
// A [Compiler] runs source text through an offline [Backend] and hands the
// resulting bytecode to a device.Device. The default backend is built on
// gogpu/naga and accepts WGSL, producing SPIR-V (or DXIL for caching).
//
//	c, err := shader.NewCompiler(dev)
//	if err != nil {
//	    return err
//	}
//	vs, err := c.CompileString(src, device.StageVertex, 0, shader.WithBytecode())
//	var cerr *shader.CompileError
//	if errors.As(err, &cerr) {
//	    for _, d := range cerr.Diagnostics {
//	        log.Println(d)
//	    }
//	}
//
// # Diagnostics
//
// Whenever the backend reports anything, warnings included, the diagnostics
// are logged together with the line-numbered source and copied to the debug
// output writer if one is configured. A successful compile may still carry
// warnings in [CompiledShader.Diagnostics].
//
// # Failure
//
// A rejected source returns a nil shader and a [*CompileError] that unwraps
// to [ErrCompileFailed]; the device is not called. A device refusal returns
// an error wrapping device.ErrObjectCreation. Nothing is retried.
package shader
