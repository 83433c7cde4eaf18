// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/wgpu/hal"
)

// stencilOpToHAL maps WebGPU stencil operations onto the HAL enumeration.
// Undefined resolves to Keep.
func stencilOpToHAL(op gputypes.StencilOperation) hal.StencilOperation {
	switch op {
	case gputypes.StencilOperationZero:
		return hal.StencilOperationZero
	case gputypes.StencilOperationReplace:
		return hal.StencilOperationReplace
	case gputypes.StencilOperationInvert:
		return hal.StencilOperationInvert
	case gputypes.StencilOperationIncrementClamp:
		return hal.StencilOperationIncrementClamp
	case gputypes.StencilOperationDecrementClamp:
		return hal.StencilOperationDecrementClamp
	case gputypes.StencilOperationIncrementWrap:
		return hal.StencilOperationIncrementWrap
	case gputypes.StencilOperationDecrementWrap:
		return hal.StencilOperationDecrementWrap
	default:
		return hal.StencilOperationKeep
	}
}

func stencilFaceToHAL(f device.StencilFaceDesc) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     f.Compare,
		FailOp:      stencilOpToHAL(f.FailOp),
		DepthFailOp: stencilOpToHAL(f.DepthFailOp),
		PassOp:      stencilOpToHAL(f.PassOp),
	}
}

// passThroughFace never fails and never writes.
var passThroughFace = hal.StencilFaceState{
	Compare:     gputypes.CompareFunctionAlways,
	FailOp:      hal.StencilOperationKeep,
	DepthFailOp: hal.StencilOperationKeep,
	PassOp:      hal.StencilOperationKeep,
}

// depthStencilToHAL expresses disabled tests the WebGPU way: an Always
// compare with writes off.
func depthStencilToHAL(desc *device.DepthStencilDesc, format gputypes.TextureFormat) hal.DepthStencilState {
	state := hal.DepthStencilState{
		Format:       format,
		DepthCompare: gputypes.CompareFunctionAlways,
		StencilFront: passThroughFace,
		StencilBack:  passThroughFace,
	}
	if desc.DepthEnable {
		state.DepthCompare = desc.DepthCompare
		state.DepthWriteEnabled = desc.DepthWriteEnabled
	}
	if desc.StencilEnable {
		state.StencilFront = stencilFaceToHAL(desc.FrontFace)
		state.StencilBack = stencilFaceToHAL(desc.BackFace)
		state.StencilReadMask = uint32(desc.StencilReadMask)
		state.StencilWriteMask = uint32(desc.StencilWriteMask)
	}
	return state
}

func mipmapFilterToHAL(m gputypes.MipmapFilterMode) gputypes.FilterMode {
	if m == gputypes.MipmapFilterModeLinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

func samplerToHAL(desc *device.SamplerDesc) *hal.SamplerDescriptor {
	return &hal.SamplerDescriptor{
		Label:        desc.Label,
		AddressModeU: desc.AddressModeU,
		AddressModeV: desc.AddressModeV,
		AddressModeW: desc.AddressModeW,
		MagFilter:    desc.MagFilter,
		MinFilter:    desc.MinFilter,
		MipmapFilter: mipmapFilterToHAL(desc.MipmapFilter),
		LodMinClamp:  desc.LodMinClamp,
		LodMaxClamp:  desc.LodMaxClamp,
		Compare:      desc.Compare,
		Anisotropy:   desc.MaxAnisotropy,
	}
}
