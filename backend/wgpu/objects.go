// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/wgpu/hal"
)

// object is the bookkeeping shared by every handle type. The id makes each
// handle distinct even when the HAL hands out zero-size resources.
type object struct {
	owner    *Device
	id       uint64
	label    string
	released atomic.Bool
}

func (o *object) base() *object { return o }

// Label returns the debug label.
func (o *object) Label() string { return o.label }

// ID returns the per-device object number, starting at 1.
func (o *object) ID() uint64 { return o.id }

// Released reports whether the object has been released.
func (o *object) Released() bool { return o.released.Load() }

type releasable interface {
	base() *object
	destroy(dev hal.Device)
}

// Shader is a SPIR-V shader module bound to one stage.
type Shader struct {
	object
	stage  device.Stage
	entry  string
	module hal.ShaderModule
	digest uint64
	size   int
}

func (s *Shader) Kind() device.Kind { return device.KindShader }

// Stage returns the shader stage.
func (s *Shader) Stage() device.Stage { return s.stage }

// EntryPoint returns the entry point function name.
func (s *Shader) EntryPoint() string { return s.entry }

// Module returns the HAL shader module.
func (s *Shader) Module() hal.ShaderModule { return s.module }

// Digest returns an FNV-64a hash of the bytecode the shader was created from.
// Two shaders with equal stage, entry point and digest are equivalent.
func (s *Shader) Digest() uint64 { return s.digest }

// Size returns the bytecode length in bytes.
func (s *Shader) Size() int { return s.size }

func (s *Shader) destroy(dev hal.Device) {
	if s.module != nil {
		dev.DestroyShaderModule(s.module)
		s.module = nil
	}
}

// BlendState is a resolved color-target blend configuration.
type BlendState struct {
	object
	desc  device.BlendDesc
	blend *gputypes.BlendState
}

func (b *BlendState) Kind() device.Kind { return device.KindBlendState }

// Desc returns the descriptor the state was created from.
func (b *BlendState) Desc() device.BlendDesc { return b.desc }

// ColorTarget returns the color target state for a render target of the
// given format. Blend is nil when blending is disabled.
func (b *BlendState) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	target := gputypes.ColorTargetState{
		Format:    format,
		WriteMask: b.desc.WriteMask,
	}
	if b.blend != nil {
		blend := *b.blend
		target.Blend = &blend
	}
	return target
}

func (b *BlendState) destroy(hal.Device) {}

// DepthStencilState is a resolved HAL depth-stencil configuration.
type DepthStencilState struct {
	object
	desc  device.DepthStencilDesc
	state hal.DepthStencilState
}

func (ds *DepthStencilState) Kind() device.Kind { return device.KindDepthStencilState }

// Desc returns the descriptor the state was created from.
func (ds *DepthStencilState) Desc() device.DepthStencilDesc { return ds.desc }

// HAL returns a copy of the resolved HAL state.
func (ds *DepthStencilState) HAL() *hal.DepthStencilState {
	state := ds.state
	return &state
}

func (ds *DepthStencilState) destroy(hal.Device) {}

// RasterizerState is a resolved primitive state.
type RasterizerState struct {
	object
	desc      device.RasterizerDesc
	primitive gputypes.PrimitiveState
}

func (rs *RasterizerState) Kind() device.Kind { return device.KindRasterizerState }

// Desc returns the descriptor the state was created from.
func (rs *RasterizerState) Desc() device.RasterizerDesc { return rs.desc }

// Primitive returns the primitive state for a triangle-list pipeline.
func (rs *RasterizerState) Primitive() gputypes.PrimitiveState { return rs.primitive }

// ScissorEnabled reports whether draws through this state expect a scissor
// rectangle to be set on the render pass.
func (rs *RasterizerState) ScissorEnabled() bool { return rs.desc.ScissorEnable }

func (rs *RasterizerState) destroy(hal.Device) {}

// Sampler wraps a HAL sampler.
type Sampler struct {
	object
	desc    device.SamplerDesc
	sampler hal.Sampler
}

func (s *Sampler) Kind() device.Kind { return device.KindSampler }

// Desc returns the descriptor the sampler was created from.
func (s *Sampler) Desc() device.SamplerDesc { return s.desc }

// HAL returns the HAL sampler. It is nil after release.
func (s *Sampler) HAL() hal.Sampler { return s.sampler }

func (s *Sampler) destroy(dev hal.Device) {
	if s.sampler != nil {
		dev.DestroySampler(s.sampler)
		s.sampler = nil
	}
}
