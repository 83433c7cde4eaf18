// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
)

func TestBlendDisabledDesc(t *testing.T) {
	for m := gputypes.ColorWriteMask(0); m <= gputypes.ColorWriteMaskAll; m++ {
		d := BlendDisabledDesc(m)
		if d.BlendEnable || d.IndependentBlendEnable {
			t.Errorf("mask %d: blending enabled", m)
		}
		if d.WriteMask != m {
			t.Errorf("mask %d: WriteMask = %d", m, d.WriteMask)
		}
		if err := d.Validate(); err != nil {
			t.Errorf("mask %d: Validate() = %v", m, err)
		}
	}
}

func TestDepthStencilDisabledDesc(t *testing.T) {
	d := DepthStencilDisabledDesc()
	if d.DepthEnable || d.StencilEnable || d.DepthWriteEnabled {
		t.Errorf("desc = %+v, want depth and stencil off", d)
	}
	if err := d.Validate(); err != nil {
		t.Error(err)
	}
}

func TestStencilWriteAlwaysDesc(t *testing.T) {
	d := StencilWriteAlwaysDesc()
	if d.DepthEnable {
		t.Error("depth test enabled")
	}
	if !d.StencilEnable {
		t.Error("stencil test disabled")
	}
	if d.StencilReadMask != 0xFF || d.StencilWriteMask != 0xFF {
		t.Errorf("masks = %#x/%#x, want 0xff", d.StencilReadMask, d.StencilWriteMask)
	}
	want := device.StencilFaceDesc{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      gputypes.StencilOperationReplace,
		DepthFailOp: gputypes.StencilOperationReplace,
		PassOp:      gputypes.StencilOperationReplace,
	}
	if d.FrontFace != want || d.BackFace != want {
		t.Errorf("faces = %+v / %+v, want %+v", d.FrontFace, d.BackFace, want)
	}
	if err := d.Validate(); err != nil {
		t.Error(err)
	}
}

func TestRasterNoCullDesc(t *testing.T) {
	d := RasterNoCullDesc()
	if d.FillMode != device.FillModeSolid || d.CullMode != gputypes.CullModeNone {
		t.Errorf("desc = %+v", d)
	}
	if d.ScissorEnable {
		t.Error("scissor enabled")
	}
	if err := d.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSamplerDesc(t *testing.T) {
	tests := []struct {
		f       Filter
		a       Address
		filter  gputypes.FilterMode
		mip     gputypes.MipmapFilterMode
		address gputypes.AddressMode
	}{
		{FilterPoint, AddressWrap, gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, gputypes.AddressModeRepeat},
		{FilterPoint, AddressClamp, gputypes.FilterModeNearest, gputypes.MipmapFilterModeNearest, gputypes.AddressModeClampToEdge},
		{FilterLinear, AddressWrap, gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, gputypes.AddressModeRepeat},
		{FilterLinear, AddressClamp, gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear, gputypes.AddressModeClampToEdge},
	}
	for _, tt := range tests {
		d := SamplerDesc(tt.f, tt.a)
		if d.MinFilter != tt.filter || d.MagFilter != tt.filter || d.MipmapFilter != tt.mip {
			t.Errorf("%v/%v: filters = %v/%v/%v", tt.f, tt.a, d.MinFilter, d.MagFilter, d.MipmapFilter)
		}
		if d.AddressModeU != tt.address || d.AddressModeV != tt.address || d.AddressModeW != tt.address {
			t.Errorf("%v/%v: address modes = %v/%v/%v", tt.f, tt.a, d.AddressModeU, d.AddressModeV, d.AddressModeW)
		}
		if d.MaxAnisotropy != 1 || d.LodMinClamp != 0 || d.LodMaxClamp != 0 {
			t.Errorf("%v/%v: anisotropy %d lod [%g, %g]", tt.f, tt.a, d.MaxAnisotropy, d.LodMinClamp, d.LodMaxClamp)
		}
		if d.Compare != gputypes.CompareFunctionUndefined {
			t.Errorf("%v/%v: comparison sampler", tt.f, tt.a)
		}
		if err := d.Validate(); err != nil {
			t.Errorf("%v/%v: %v", tt.f, tt.a, err)
		}
	}
	if SamplerDesc(Filter(9), AddressWrap) != nil {
		t.Error("SamplerDesc accepted an unknown filter")
	}
}
