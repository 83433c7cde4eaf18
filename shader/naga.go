// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"

	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/dxil"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
	"github.com/gogpu/naga/wgsl"
)

// NagaBackend compiles WGSL with gogpu/naga.
//
// The pipeline is parse, lower, validate (unless FlagSkipValidation), keep
// the entry points of the requested stage, then generate code for Target.
// Geometry shaders cannot be written in WGSL and always fail.
type NagaBackend struct {
	Target Target

	// SPIRVVersion defaults to SPIR-V 1.3.
	SPIRVVersion spirv.Version

	// ShaderModel defaults to 6.0.
	ShaderModel dxil.ShaderModel
}

// NewNagaBackend returns a naga backend emitting target.
func NewNagaBackend(target Target) *NagaBackend {
	return &NagaBackend{
		Target:       target,
		SPIRVVersion: spirv.Version1_3,
		ShaderModel:  dxil.SM6_0,
	}
}

// Name returns "naga/<target>".
func (b *NagaBackend) Name() string { return "naga/" + b.Target.String() }

var irStages = map[device.Stage]ir.ShaderStage{
	device.StageVertex:  ir.StageVertex,
	device.StagePixel:   ir.StageFragment,
	device.StageCompute: ir.StageCompute,
}

// Compile implements Backend.
func (b *NagaBackend) Compile(req Request) Output {
	var out Output
	fail := func(err error) Output {
		out.Diagnostics = append(out.Diagnostics, errorDiagnostic(err))
		out.Bytecode = nil
		return out
	}

	irStage, ok := irStages[req.Stage]
	if !ok {
		return fail(fmt.Errorf("%v shaders cannot be expressed in WGSL (%v)", req.Stage, device.ErrUnsupportedStage))
	}

	ast, err := naga.Parse(req.Source)
	if err != nil {
		return fail(err)
	}
	lowered, err := wgsl.LowerWithWarnings(ast, req.Source)
	if err != nil {
		return fail(err)
	}
	for _, w := range lowered.Warnings {
		out.Diagnostics = append(out.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Message:  w.Message,
			Line:     w.Span.Start.Line,
			Column:   w.Span.Start.Column,
		})
	}

	if !req.Flags.Has(FlagSkipValidation) {
		verrs, err := naga.Validate(lowered.Module)
		if err != nil {
			return fail(err)
		}
		if len(verrs) > 0 {
			for _, v := range verrs {
				out.Diagnostics = append(out.Diagnostics, Diagnostic{Severity: SeverityError, Message: v.Error()})
			}
			return out
		}
	}

	module, entry, err := selectEntryPoints(lowered.Module, irStage, req.EntryPoint)
	if err != nil {
		return fail(err)
	}

	var code []byte
	switch b.Target {
	case TargetSPIRV:
		version := b.SPIRVVersion
		if version == (spirv.Version{}) {
			version = spirv.Version1_3
		}
		code, err = naga.GenerateSPIRV(module, spirv.Options{
			Version: version,
			Debug:   req.Flags.Has(FlagDebug),
		})
	case TargetDXIL:
		opts := dxil.DefaultOptions()
		if b.ShaderModel != (dxil.ShaderModel{}) {
			opts.ShaderModel = b.ShaderModel
		}
		code, err = dxil.Compile(module, opts)
		if err == nil && !req.Flags.Has(FlagSkipValidation) {
			err = dxil.Validate(code, dxil.ValidateStructural)
		}
	default:
		err = fmt.Errorf("unknown target %v", b.Target)
	}
	if err != nil {
		return fail(err)
	}
	if len(code) == 0 {
		return fail(fmt.Errorf("%s produced no bytecode", b.Name()))
	}

	out.Bytecode = code
	out.EntryPoint = entry
	return out
}

// selectEntryPoints returns a shallow copy of m holding only the entry points
// for stage, optionally narrowed to name, and the first kept entry point.
func selectEntryPoints(m *ir.Module, stage ir.ShaderStage, name string) (*ir.Module, string, error) {
	var kept []ir.EntryPoint
	for _, ep := range m.EntryPoints {
		if ep.Stage != stage {
			continue
		}
		if name != "" && ep.Name != name {
			continue
		}
		kept = append(kept, ep)
	}
	if len(kept) == 0 {
		if name != "" {
			return nil, "", fmt.Errorf("no %s entry point named %q", stageAttr(stage), name)
		}
		return nil, "", fmt.Errorf("no %s entry point", stageAttr(stage))
	}
	filtered := *m
	filtered.EntryPoints = kept
	return &filtered, kept[0].Name, nil
}

// stageAttr returns the WGSL attribute that declares stage.
func stageAttr(stage ir.ShaderStage) string {
	switch stage {
	case ir.StageVertex:
		return "@vertex"
	case ir.StageFragment:
		return "@fragment"
	case ir.StageCompute:
		return "@compute"
	default:
		return fmt.Sprintf("stage %d", stage)
	}
}
