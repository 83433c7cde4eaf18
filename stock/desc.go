// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
)

const labelPrefix = "stock:"

// BlendDisabledDesc returns a blend state with blending and independent blend
// off that writes the channels in mask.
func BlendDisabledDesc(mask gputypes.ColorWriteMask) *device.BlendDesc {
	k, _ := BlendKey(mask & gputypes.ColorWriteMaskAll)
	return &device.BlendDesc{
		Label:     labelPrefix + k.String(),
		WriteMask: mask & gputypes.ColorWriteMaskAll,
	}
}

// DepthStencilDisabledDesc returns a depth-stencil state with depth and
// stencil testing off.
func DepthStencilDisabledDesc() *device.DepthStencilDesc {
	return &device.DepthStencilDesc{
		Label: labelPrefix + KeyDepthStencilDisabled.String(),
	}
}

// StencilWriteAlwaysDesc returns a depth-stencil state that ignores depth and
// replaces the stencil value with the reference on every outcome, so each
// fragment drawn through it stamps the stencil buffer.
func StencilWriteAlwaysDesc() *device.DepthStencilDesc {
	face := device.StencilFaceDesc{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      gputypes.StencilOperationReplace,
		DepthFailOp: gputypes.StencilOperationReplace,
		PassOp:      gputypes.StencilOperationReplace,
	}
	return &device.DepthStencilDesc{
		Label:            labelPrefix + KeyStencilWriteAlways.String(),
		StencilEnable:    true,
		StencilReadMask:  0xFF,
		StencilWriteMask: 0xFF,
		FrontFace:        face,
		BackFace:         face,
	}
}

// RasterNoCullDesc returns a solid-fill rasterizer state that culls nothing.
// Front faces wind clockwise and scissoring is off.
func RasterNoCullDesc() *device.RasterizerDesc {
	return &device.RasterizerDesc{
		Label:     labelPrefix + KeyRasterNoCull.String(),
		FillMode:  device.FillModeSolid,
		CullMode:  gputypes.CullModeNone,
		FrontFace: gputypes.FrontFaceCW,
	}
}

// SamplerDesc returns an isotropic sampler restricted to the top mip level.
// It returns nil for an unknown filter or addressing.
func SamplerDesc(f Filter, a Address) *device.SamplerDesc {
	k, ok := SamplerKey(f, a)
	if !ok {
		return nil
	}
	filter, mip := gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest
	if f == FilterLinear {
		filter, mip = gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear
	}
	address := gputypes.AddressModeRepeat
	if a == AddressClamp {
		address = gputypes.AddressModeClampToEdge
	}
	return &device.SamplerDesc{
		Label:         labelPrefix + k.String(),
		AddressModeU:  address,
		AddressModeV:  address,
		AddressModeW:  address,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  mip,
		LodMinClamp:   0,
		LodMaxClamp:   0,
		MaxAnisotropy: 1,
	}
}

// createEntry creates the object stored under k.
func createEntry(dev device.Device, k Key) (device.Object, error) {
	switch k.Kind() {
	case device.KindBlendState:
		return dev.CreateBlendState(BlendDisabledDesc(gputypes.ColorWriteMask(k)))
	case device.KindDepthStencilState:
		if k == KeyStencilWriteAlways {
			return dev.CreateDepthStencilState(StencilWriteAlwaysDesc())
		}
		return dev.CreateDepthStencilState(DepthStencilDisabledDesc())
	case device.KindRasterizerState:
		return dev.CreateRasterizerState(RasterNoCullDesc())
	default:
		return dev.CreateSampler(SamplerDesc(k.sampler()))
	}
}
