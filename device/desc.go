// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// ShaderDesc describes a shader object created from compiled bytecode.
type ShaderDesc struct {
	// Label is an optional debug label.
	Label string

	// Stage is the pipeline stage the bytecode was compiled for.
	Stage Stage

	// Bytecode is the backend-specific compiled shader. The device does not
	// retain the slice after CreateShader returns.
	Bytecode []byte

	// EntryPoint names the stage function. Empty means "main".
	EntryPoint string
}

// Validate checks the descriptor for structural errors.
func (d *ShaderDesc) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil shader descriptor", ErrInvalidDescriptor)
	}
	if !d.Stage.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, d.Stage)
	}
	if len(d.Bytecode) == 0 {
		return fmt.Errorf("%w: empty bytecode", ErrInvalidBytecode)
	}
	return nil
}

// Entry returns the entry point name, defaulting to "main".
func (d *ShaderDesc) Entry() string {
	if d.EntryPoint == "" {
		return "main"
	}
	return d.EntryPoint
}

// BlendDesc describes blending for the first render target.
type BlendDesc struct {
	Label string

	// BlendEnable turns blending on. When false, Blend is ignored and
	// source color replaces the destination.
	BlendEnable bool

	// IndependentBlendEnable allows per-target blend settings. Only one
	// target is described here, so it must be false.
	IndependentBlendEnable bool

	// Blend holds the blend equations used when BlendEnable is true.
	Blend gputypes.BlendState

	// WriteMask selects the color channels written.
	WriteMask gputypes.ColorWriteMask
}

// Validate checks the descriptor for structural errors.
func (d *BlendDesc) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil blend descriptor", ErrInvalidDescriptor)
	}
	if d.WriteMask&^gputypes.ColorWriteMaskAll != 0 {
		return fmt.Errorf("%w: color write mask %#x out of range", ErrInvalidDescriptor, uint32(d.WriteMask))
	}
	if d.IndependentBlendEnable {
		return fmt.Errorf("%w: independent blend with a single target", ErrInvalidDescriptor)
	}
	if d.BlendEnable {
		if d.Blend.Color.Operation == gputypes.BlendOperationUndefined ||
			d.Blend.Alpha.Operation == gputypes.BlendOperationUndefined {
			return fmt.Errorf("%w: blend enabled without blend operation", ErrInvalidDescriptor)
		}
	}
	return nil
}

// StencilFaceDesc describes the stencil test for one triangle facing.
type StencilFaceDesc struct {
	Compare     gputypes.CompareFunction
	FailOp      gputypes.StencilOperation
	DepthFailOp gputypes.StencilOperation
	PassOp      gputypes.StencilOperation
}

// DepthStencilDesc describes depth and stencil testing.
type DepthStencilDesc struct {
	Label string

	// DepthEnable turns the depth test on. When false, DepthWriteEnabled and
	// DepthCompare are ignored.
	DepthEnable       bool
	DepthWriteEnabled bool
	DepthCompare      gputypes.CompareFunction

	// StencilEnable turns the stencil test on. When false, the masks and
	// face descriptors are ignored.
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	FrontFace        StencilFaceDesc
	BackFace         StencilFaceDesc
}

// Validate checks the descriptor for structural errors.
func (d *DepthStencilDesc) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil depth-stencil descriptor", ErrInvalidDescriptor)
	}
	if d.DepthEnable && d.DepthCompare == gputypes.CompareFunctionUndefined {
		return fmt.Errorf("%w: depth test enabled without compare function", ErrInvalidDescriptor)
	}
	if d.StencilEnable {
		if d.FrontFace.Compare == gputypes.CompareFunctionUndefined ||
			d.BackFace.Compare == gputypes.CompareFunctionUndefined {
			return fmt.Errorf("%w: stencil test enabled without compare function", ErrInvalidDescriptor)
		}
	}
	return nil
}

// FillMode selects how triangles are rasterized.
type FillMode uint8

const (
	// FillModeSolid fills triangle interiors.
	FillModeSolid FillMode = iota

	// FillModeWireframe draws triangle edges only.
	FillModeWireframe
)

func (m FillMode) String() string {
	switch m {
	case FillModeSolid:
		return "solid"
	case FillModeWireframe:
		return "wireframe"
	default:
		return fmt.Sprintf("FillMode(%d)", uint8(m))
	}
}

// RasterizerDesc describes rasterizer state.
type RasterizerDesc struct {
	Label         string
	FillMode      FillMode
	CullMode      gputypes.CullMode
	FrontFace     gputypes.FrontFace
	ScissorEnable bool
}

// Validate checks the descriptor for structural errors.
func (d *RasterizerDesc) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil rasterizer descriptor", ErrInvalidDescriptor)
	}
	if d.FillMode > FillModeWireframe {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, d.FillMode)
	}
	if d.CullMode > gputypes.CullModeBack {
		return fmt.Errorf("%w: cull mode %d", ErrInvalidDescriptor, d.CullMode)
	}
	if d.FrontFace > gputypes.FrontFaceCW {
		return fmt.Errorf("%w: front face %d", ErrInvalidDescriptor, d.FrontFace)
	}
	return nil
}

// SamplerDesc describes a texture sampler.
type SamplerDesc struct {
	Label string

	AddressModeU gputypes.AddressMode
	AddressModeV gputypes.AddressMode
	AddressModeW gputypes.AddressMode

	MagFilter    gputypes.FilterMode
	MinFilter    gputypes.FilterMode
	MipmapFilter gputypes.MipmapFilterMode

	// LodMinClamp and LodMaxClamp bound the sampled mip level.
	// Zero for both restricts sampling to the top level.
	LodMinClamp float32
	LodMaxClamp float32

	// MaxAnisotropy is 1 for isotropic filtering.
	MaxAnisotropy uint16

	// Compare makes this a comparison sampler when not Undefined.
	Compare gputypes.CompareFunction
}

// Validate checks the descriptor for structural errors.
func (d *SamplerDesc) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil sampler descriptor", ErrInvalidDescriptor)
	}
	for _, m := range [...]gputypes.AddressMode{d.AddressModeU, d.AddressModeV, d.AddressModeW} {
		if m == gputypes.AddressModeUndefined || m > gputypes.AddressModeMirrorRepeat {
			return fmt.Errorf("%w: address mode %d", ErrInvalidDescriptor, m)
		}
	}
	if d.MagFilter == gputypes.FilterModeUndefined || d.MagFilter > gputypes.FilterModeLinear ||
		d.MinFilter == gputypes.FilterModeUndefined || d.MinFilter > gputypes.FilterModeLinear {
		return fmt.Errorf("%w: filter mode", ErrInvalidDescriptor)
	}
	if d.MipmapFilter > gputypes.MipmapFilterModeLinear {
		return fmt.Errorf("%w: mipmap filter mode %d", ErrInvalidDescriptor, d.MipmapFilter)
	}
	if d.LodMinClamp < 0 || d.LodMaxClamp < d.LodMinClamp {
		return fmt.Errorf("%w: lod clamp [%g, %g]", ErrInvalidDescriptor, d.LodMinClamp, d.LodMaxClamp)
	}
	if d.MaxAnisotropy == 0 {
		return fmt.Errorf("%w: max anisotropy must be at least 1", ErrInvalidDescriptor)
	}
	return nil
}
