// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu implements device.Device on the gogpu/wgpu hardware
// abstraction layer (HAL).
//
// The HAL device is supplied by the host application, either directly or
// through a provider:
//
//	dev, err := wgpu.NewDevice(openDev.Device)
//	// or
//	dev, err := wgpu.FromProvider(app) // app exposes HalDevice() any
//
// # Object mapping
//
// WebGPU has no standalone state objects, so the handles map as follows:
//
//   - Shader: hal.ShaderModule created from SPIR-V bytecode
//   - Sampler: hal.Sampler
//   - BlendState: gputypes.ColorTargetState fragment (see BlendState.ColorTarget)
//   - DepthStencilState: hal.DepthStencilState (see DepthStencilState.HAL)
//   - RasterizerState: gputypes.PrimitiveState (see RasterizerState.Primitive)
//
// Disabled depth or stencil tests are expressed as an Always compare with
// writes off, which is how WebGPU spells "test disabled". Geometry shaders
// and wireframe fill have no WebGPU equivalent and are rejected.
//
// [Device.CreateRenderPipeline] combines shaders and state handles into a
// hal.RenderPipeline.
//
// # Lifetime
//
// Release is idempotent per handle: a second release is logged at Warn level
// and ignored. [Device.LiveObjects] reports the number of outstanding
// handles, which should be zero before the HAL device is destroyed.
//
// # Thread Safety
//
// Object creation and release may be called from multiple goroutines as far
// as this package is concerned; the underlying HAL backend may impose its own
// restrictions.
package wgpu
