// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func validSampler() SamplerDesc {
	return SamplerDesc{
		AddressModeU:  gputypes.AddressModeRepeat,
		AddressModeV:  gputypes.AddressModeRepeat,
		AddressModeW:  gputypes.AddressModeRepeat,
		MagFilter:     gputypes.FilterModeLinear,
		MinFilter:     gputypes.FilterModeLinear,
		MipmapFilter:  gputypes.MipmapFilterModeLinear,
		MaxAnisotropy: 1,
	}
}

func TestShaderDescValidate(t *testing.T) {
	var nilDesc *ShaderDesc
	if err := nilDesc.Validate(); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("nil desc: err = %v, want ErrInvalidDescriptor", err)
	}

	d := &ShaderDesc{Stage: StageVertex}
	if err := d.Validate(); !errors.Is(err, ErrInvalidBytecode) {
		t.Errorf("empty bytecode: err = %v, want ErrInvalidBytecode", err)
	}

	d = &ShaderDesc{Stage: Stage(9), Bytecode: []byte{1}}
	if err := d.Validate(); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("bad stage: err = %v, want ErrInvalidDescriptor", err)
	}

	d = &ShaderDesc{Stage: StagePixel, Bytecode: []byte{1, 2, 3, 4}}
	if err := d.Validate(); err != nil {
		t.Errorf("valid desc: err = %v", err)
	}
	if d.Entry() != "main" {
		t.Errorf("Entry() = %q, want main", d.Entry())
	}
	d.EntryPoint = "fs_main"
	if d.Entry() != "fs_main" {
		t.Errorf("Entry() = %q, want fs_main", d.Entry())
	}
}

func TestBlendDescValidate(t *testing.T) {
	tests := []struct {
		name    string
		desc    BlendDesc
		wantErr bool
	}{
		{"disabled all", BlendDesc{WriteMask: gputypes.ColorWriteMaskAll}, false},
		{"disabled none", BlendDesc{WriteMask: gputypes.ColorWriteMaskNone}, false},
		{"mask overflow", BlendDesc{WriteMask: 0x10}, true},
		{"independent", BlendDesc{IndependentBlendEnable: true}, true},
		{"enabled without ops", BlendDesc{BlendEnable: true}, true},
		{"enabled alpha", BlendDesc{BlendEnable: true, Blend: gputypes.BlendStateAlpha(), WriteMask: gputypes.ColorWriteMaskAll}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("err = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestDepthStencilDescValidate(t *testing.T) {
	always := StencilFaceDesc{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      gputypes.StencilOperationReplace,
		DepthFailOp: gputypes.StencilOperationReplace,
		PassOp:      gputypes.StencilOperationReplace,
	}
	tests := []struct {
		name    string
		desc    DepthStencilDesc
		wantErr bool
	}{
		{"all disabled", DepthStencilDesc{}, false},
		{"depth without compare", DepthStencilDesc{DepthEnable: true}, true},
		{"depth less", DepthStencilDesc{DepthEnable: true, DepthCompare: gputypes.CompareFunctionLess}, false},
		{"stencil without compare", DepthStencilDesc{StencilEnable: true}, true},
		{"stencil always", DepthStencilDesc{StencilEnable: true, FrontFace: always, BackFace: always}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.desc.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRasterizerDescValidate(t *testing.T) {
	ok := RasterizerDesc{FillMode: FillModeSolid, CullMode: gputypes.CullModeNone, FrontFace: gputypes.FrontFaceCW}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	bad := []RasterizerDesc{
		{FillMode: 7},
		{CullMode: 9},
		{FrontFace: 5},
	}
	for i, d := range bad {
		if err := d.Validate(); !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("case %d: err = %v, want ErrInvalidDescriptor", i, err)
		}
	}
	if FillModeWireframe.String() != "wireframe" {
		t.Errorf("FillModeWireframe.String() = %q", FillModeWireframe.String())
	}
}

func TestSamplerDescValidate(t *testing.T) {
	d := validSampler()
	if err := d.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	mutations := map[string]func(*SamplerDesc){
		"undefined address": func(d *SamplerDesc) { d.AddressModeV = gputypes.AddressModeUndefined },
		"undefined filter":  func(d *SamplerDesc) { d.MinFilter = gputypes.FilterModeUndefined },
		"bad mip filter":    func(d *SamplerDesc) { d.MipmapFilter = 9 },
		"negative lod":      func(d *SamplerDesc) { d.LodMinClamp = -1 },
		"inverted lod":      func(d *SamplerDesc) { d.LodMinClamp, d.LodMaxClamp = 4, 1 },
		"zero anisotropy":   func(d *SamplerDesc) { d.MaxAnisotropy = 0 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			d := validSampler()
			mutate(&d)
			if err := d.Validate(); !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Validate() = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for k := KindShader; k <= KindSampler; k++ {
		if k.String() == "" || k.String()[0] == 'K' {
			t.Errorf("Kind %d has no name", k)
		}
	}
	if Kind(0).String() != "Kind(0)" {
		t.Errorf("Kind(0).String() = %q", Kind(0).String())
	}
}
