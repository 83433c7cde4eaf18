// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/wgpu/hal"
)

// RenderPipelineDesc describes a render pipeline built from compiled shaders
// and state objects created by the same Device.
type RenderPipelineDesc struct {
	Label string

	// Layout is the pipeline layout. When nil an empty layout is created
	// and owned by the pipeline.
	Layout hal.PipelineLayout

	Vertex        device.Shader
	VertexBuffers []gputypes.VertexBufferLayout

	// Pixel is optional for depth-only passes. Blend and TargetFormat are
	// required with it.
	Pixel        device.Shader
	Blend        device.BlendState
	TargetFormat gputypes.TextureFormat

	// DepthStencil is optional.
	DepthStencil device.DepthStencilState

	Rasterizer device.RasterizerState

	// SampleCount defaults to 1.
	SampleCount uint32
}

// RenderPipeline is a HAL render pipeline and, when it created one, its layout.
type RenderPipeline struct {
	label      string
	pipeline   hal.RenderPipeline
	layout     hal.PipelineLayout
	ownsLayout bool
}

// Label returns the debug label.
func (p *RenderPipeline) Label() string { return p.label }

// HAL returns the HAL render pipeline. It is nil after destruction.
func (p *RenderPipeline) HAL() hal.RenderPipeline { return p.pipeline }

// CreateRenderPipeline assembles a HAL render pipeline.
func (d *Device) CreateRenderPipeline(desc *RenderPipelineDesc) (*RenderPipeline, error) {
	if desc == nil {
		return nil, fmt.Errorf("wgpu: %w: nil render pipeline descriptor", device.ErrInvalidDescriptor)
	}
	vs, err := d.shaderFor(desc.Vertex, device.StageVertex)
	if err != nil {
		return nil, err
	}
	raster, err := ownedAs[*RasterizerState](d, desc.Rasterizer)
	if err != nil {
		return nil, fmt.Errorf("wgpu: rasterizer state: %w", err)
	}

	halDesc := &hal.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: desc.Layout,
		Vertex: hal.VertexState{
			Module:     vs.module,
			EntryPoint: vs.entry,
			Buffers:    desc.VertexBuffers,
		},
		Primitive:   raster.Primitive(),
		Multisample: gputypes.DefaultMultisampleState(),
	}
	if desc.SampleCount > 1 {
		halDesc.Multisample.Count = desc.SampleCount
	}

	if desc.Pixel != nil {
		ps, err := d.shaderFor(desc.Pixel, device.StagePixel)
		if err != nil {
			return nil, err
		}
		blend, err := ownedAs[*BlendState](d, desc.Blend)
		if err != nil {
			return nil, fmt.Errorf("wgpu: blend state: %w", err)
		}
		if desc.TargetFormat == gputypes.TextureFormatUndefined {
			return nil, fmt.Errorf("wgpu: %w: pixel stage without target format", device.ErrInvalidDescriptor)
		}
		halDesc.Fragment = &hal.FragmentState{
			Module:     ps.module,
			EntryPoint: ps.entry,
			Targets:    []gputypes.ColorTargetState{blend.ColorTarget(desc.TargetFormat)},
		}
	}

	if desc.DepthStencil != nil {
		ds, err := ownedAs[*DepthStencilState](d, desc.DepthStencil)
		if err != nil {
			return nil, fmt.Errorf("wgpu: depth-stencil state: %w", err)
		}
		halDesc.DepthStencil = ds.HAL()
	}

	p := &RenderPipeline{label: desc.Label, layout: desc.Layout}
	if halDesc.Layout == nil {
		layout, err := d.hal.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{Label: desc.Label + "_layout"})
		if err != nil {
			return nil, fmt.Errorf("wgpu: create pipeline layout: %w: %w", device.ErrObjectCreation, err)
		}
		halDesc.Layout = layout
		p.layout = layout
		p.ownsLayout = true
	}

	pipeline, err := d.hal.CreateRenderPipeline(halDesc)
	if err != nil {
		if p.ownsLayout {
			d.hal.DestroyPipelineLayout(p.layout)
		}
		return nil, fmt.Errorf("wgpu: create render pipeline %q: %w: %w", desc.Label, device.ErrObjectCreation, err)
	}
	p.pipeline = pipeline
	d.log().Debug("wgpu: render pipeline created", "label", desc.Label, "fragment", halDesc.Fragment != nil, "depthStencil", halDesc.DepthStencil != nil)
	return p, nil
}

// DestroyRenderPipeline destroys the pipeline and any layout it owns.
// Calling it twice is a no-op.
func (d *Device) DestroyRenderPipeline(p *RenderPipeline) {
	if p == nil {
		return
	}
	if p.pipeline != nil {
		d.hal.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.ownsLayout && p.layout != nil {
		d.hal.DestroyPipelineLayout(p.layout)
	}
	p.layout = nil
	p.ownsLayout = false
}

func (d *Device) shaderFor(s device.Shader, stage device.Stage) (*Shader, error) {
	if s == nil {
		return nil, fmt.Errorf("wgpu: %w: missing %v shader", device.ErrInvalidDescriptor, stage)
	}
	shader, err := ownedAs[*Shader](d, s)
	if err != nil {
		return nil, fmt.Errorf("wgpu: %v shader: %w", stage, err)
	}
	if shader.stage != stage {
		return nil, fmt.Errorf("wgpu: %w: %v shader bound as %v", device.ErrInvalidDescriptor, shader.stage, stage)
	}
	return shader, nil
}

// ownedAs resolves obj to a live handle of type T created by d.
func ownedAs[T releasable](d *Device, obj device.Object) (T, error) {
	var zero T
	if obj == nil {
		return zero, fmt.Errorf("%w: missing object", device.ErrInvalidDescriptor)
	}
	h, ok := obj.(T)
	if !ok || h.base().owner != d {
		return zero, fmt.Errorf("%w: %v %q", ErrForeignObject, obj.Kind(), obj.Label())
	}
	if h.base().released.Load() {
		return zero, fmt.Errorf("%w: %v %q", ErrReleased, obj.Kind(), obj.Label())
	}
	return h, nil
}
