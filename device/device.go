// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "fmt"

// Kind identifies the category of a device object.
type Kind uint8

const (
	KindShader Kind = iota + 1
	KindBlendState
	KindDepthStencilState
	KindRasterizerState
	KindSampler
)

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindBlendState:
		return "blend state"
	case KindDepthStencilState:
		return "depth-stencil state"
	case KindRasterizerState:
		return "rasterizer state"
	case KindSampler:
		return "sampler"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Object is an opaque handle created by a Device.
type Object interface {
	// Kind returns the object category.
	Kind() Kind

	// Label returns the debug label the object was created with.
	Label() string
}

// Shader is a compiled shader bound to one pipeline stage.
type Shader interface {
	Object
	Stage() Stage
}

// BlendState is an immutable output-merger blend configuration.
type BlendState interface {
	Object
	Desc() BlendDesc
}

// DepthStencilState is an immutable depth and stencil test configuration.
type DepthStencilState interface {
	Object
	Desc() DepthStencilDesc
}

// RasterizerState is an immutable rasterizer configuration.
type RasterizerState interface {
	Object
	Desc() RasterizerDesc
}

// Sampler is an immutable texture sampler.
type Sampler interface {
	Object
	Desc() SamplerDesc
}

// Device creates and releases shader and pipeline-state objects.
//
// Every Create method validates its descriptor first and returns an error
// wrapping ErrInvalidDescriptor when it is malformed. A refusal by the
// underlying API is reported wrapping ErrObjectCreation.
//
// Implementations are not required to be safe for concurrent use. Calls for a
// single device are serialized by the caller.
type Device interface {
	// CreateShader creates a stage shader from compiled bytecode.
	CreateShader(desc *ShaderDesc) (Shader, error)

	// CreateBlendState creates a blend state object.
	CreateBlendState(desc *BlendDesc) (BlendState, error)

	// CreateDepthStencilState creates a depth-stencil state object.
	CreateDepthStencilState(desc *DepthStencilDesc) (DepthStencilState, error)

	// CreateRasterizerState creates a rasterizer state object.
	CreateRasterizerState(desc *RasterizerDesc) (RasterizerState, error)

	// CreateSampler creates a sampler object.
	CreateSampler(desc *SamplerDesc) (Sampler, error)

	// Release frees obj. A nil obj is ignored.
	Release(obj Object)
}
