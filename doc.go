// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuutil is the backend utility layer shared by gogpu renderers.
//
// # Overview
//
// It does two jobs for a GPU device:
//
//   - compile shader source to backend bytecode and create shader objects,
//     reporting every compiler diagnostic (package shader)
//   - keep a fixed catalog of reusable pipeline-state objects, created once
//     per device and looked up by key on every draw (package stock)
//
// A [Context] bundles both for one device and owns their lifetime.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gpuutil"
//	    "github.com/gogpu/gpuutil/backend/wgpu"
//	    "github.com/gogpu/gpuutil/device"
//	)
//
//	dev, err := wgpu.NewDevice(halDevice)
//	if err != nil {
//	    return err
//	}
//	ctx, err := gpuutil.New(dev)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	vs, err := ctx.Compiler().CompileString(src, device.StageVertex, 0)
//	if err != nil {
//	    return err // *shader.CompileError carries the diagnostics
//	}
//	defer dev.Release(vs.Shader)
//
//	blend := ctx.Stock().BlendDisabled(gputypes.ColorWriteMaskAll)
//
// # Device Loss
//
// After the device is lost, call [Context.Recover] with the new device. It
// destroys the whole stock catalog and creates it again; there is no partial
// repair. Shaders compiled earlier belong to the caller and must be compiled
// again.
//
// # Packages
//
//   - device: backend-neutral device interface, stages and state descriptors
//   - shader: Compiler, diagnostics, the naga backend
//   - stock: the stock object Pool
//   - backend/wgpu: device implementation over gogpu/wgpu HAL
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package gpuutil
