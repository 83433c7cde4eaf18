// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Stage selects the pipeline stage a shader is compiled for.
type Stage uint8

const (
	// StageVertex is the vertex stage.
	StageVertex Stage = iota

	// StagePixel is the pixel (fragment) stage.
	StagePixel

	// StageCompute is the compute stage.
	StageCompute

	// StageGeometry is the geometry stage. WebGPU-class backends do not
	// support it.
	StageGeometry

	numStages
)

var stageNames = [numStages]string{"vertex", "pixel", "compute", "geometry"}

// Each stage compiles against a fixed shader model.
var stageProfiles = [numStages]string{"vs_5_0", "ps_5_0", "cs_5_0", "gs_5_0"}

// Valid reports whether s is one of the defined stages.
func (s Stage) Valid() bool { return s < numStages }

// String returns the lowercase stage name.
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// Profile returns the fixed target profile string for the stage,
// for example "vs_5_0" for StageVertex.
func (s Stage) Profile() string {
	if !s.Valid() {
		return ""
	}
	return stageProfiles[s]
}

// ShaderStage returns the WebGPU stage bit for s.
// StageGeometry and invalid stages map to gputypes.ShaderStageNone.
func (s Stage) ShaderStage() gputypes.ShaderStage {
	switch s {
	case StageVertex:
		return gputypes.ShaderStageVertex
	case StagePixel:
		return gputypes.ShaderStageFragment
	case StageCompute:
		return gputypes.ShaderStageCompute
	default:
		return gputypes.ShaderStageNone
	}
}

// Stages returns every defined stage in declaration order.
func Stages() []Stage {
	return []Stage{StageVertex, StagePixel, StageCompute, StageGeometry}
}
