// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/logging"
	"github.com/gogpu/wgpu/hal"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Option configures a Device.
type Option func(*options)

type options struct {
	depthFormat gputypes.TextureFormat
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		depthFormat: gputypes.TextureFormatDepth24PlusStencil8,
	}
}

// WithDepthFormat sets the depth-stencil attachment format baked into
// depth-stencil state objects. The default is Depth24PlusStencil8.
func WithDepthFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.depthFormat = format
	}
}

// WithLogger sets a logger for this device only. Without it the device logs
// through the logger installed with gpuutil.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Device implements device.Device on top of a gogpu/wgpu HAL device.
//
// Shader and sampler objects own real HAL resources. WebGPU has no standalone
// blend, depth-stencil or rasterizer objects, so those handles carry the
// resolved HAL pipeline fragments and are consumed by CreateRenderPipeline.
//
// Device does not own the HAL device; the caller destroys it after every
// object created here has been released.
type Device struct {
	hal         hal.Device
	depthFormat gputypes.TextureFormat
	logger      *slog.Logger

	nextID atomic.Uint64
	live   atomic.Int64
}

var _ device.Device = (*Device)(nil)

// NewDevice wraps an open HAL device.
func NewDevice(dev hal.Device, opts ...Option) (*Device, error) {
	if dev == nil {
		return nil, device.ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Device{
		hal:         dev,
		depthFormat: o.depthFormat,
		logger:      o.logger,
	}, nil
}

// HAL returns the wrapped HAL device.
func (d *Device) HAL() hal.Device { return d.hal }

// DepthFormat returns the depth-stencil format used for depth-stencil states.
func (d *Device) DepthFormat() gputypes.TextureFormat { return d.depthFormat }

// LiveObjects returns the number of objects created and not yet released.
func (d *Device) LiveObjects() int { return int(d.live.Load()) }

func (d *Device) log() *slog.Logger { return logging.Or(d.logger) }

// track assigns an id and owner to a freshly built handle and counts it live.
func (d *Device) track(o *object, label string) {
	o.owner = d
	o.id = d.nextID.Add(1)
	o.label = label
	d.live.Add(1)
}

// CreateShader creates a shader module from SPIR-V bytecode.
// Geometry shaders are rejected with device.ErrUnsupportedStage.
func (d *Device) CreateShader(desc *device.ShaderDesc) (device.Shader, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.Stage == device.StageGeometry {
		return nil, fmt.Errorf("wgpu: %w: %v", device.ErrUnsupportedStage, desc.Stage)
	}
	words, err := spirvWords(desc.Bytecode)
	if err != nil {
		return nil, err
	}

	module, err := d.hal.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  desc.Label,
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %v shader %q: %w: %w", desc.Stage, desc.Label, device.ErrObjectCreation, err)
	}

	h := fnv.New64a()
	_, _ = h.Write(desc.Bytecode)

	s := &Shader{
		stage:  desc.Stage,
		entry:  desc.Entry(),
		module: module,
		digest: h.Sum64(),
		size:   len(desc.Bytecode),
	}
	d.track(&s.object, desc.Label)
	d.log().Debug("wgpu: shader created", "label", desc.Label, "stage", desc.Stage, "bytes", len(desc.Bytecode))
	return s, nil
}

// spirvWords reinterprets little-endian SPIR-V bytes as 32-bit words.
func spirvWords(code []byte) ([]uint32, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("wgpu: %w: length %d is not a multiple of 4", device.ErrInvalidBytecode, len(code))
	}
	if len(code) < 20 || binary.LittleEndian.Uint32(code) != spirvMagic {
		return nil, fmt.Errorf("wgpu: %w: not a SPIR-V module", device.ErrInvalidBytecode)
	}
	words := make([]uint32, len(code)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(code[i*4:])
	}
	return words, nil
}

// CreateBlendState resolves a blend descriptor into a color target fragment.
func (d *Device) CreateBlendState(desc *device.BlendDesc) (device.BlendState, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	b := &BlendState{desc: *desc}
	if desc.BlendEnable {
		blend := desc.Blend
		b.blend = &blend
	}
	d.track(&b.object, desc.Label)
	return b, nil
}

// CreateDepthStencilState resolves a depth-stencil descriptor into a HAL
// depth-stencil state using the device depth format.
func (d *Device) CreateDepthStencilState(desc *device.DepthStencilDesc) (device.DepthStencilState, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	ds := &DepthStencilState{
		desc:  *desc,
		state: depthStencilToHAL(desc, d.depthFormat),
	}
	d.track(&ds.object, desc.Label)
	return ds, nil
}

// CreateRasterizerState resolves a rasterizer descriptor into a primitive
// state. Wireframe fill is not available in WebGPU.
func (d *Device) CreateRasterizerState(desc *device.RasterizerDesc) (device.RasterizerState, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if desc.FillMode == device.FillModeWireframe {
		return nil, fmt.Errorf("wgpu: %w: wireframe fill is not supported", device.ErrInvalidDescriptor)
	}
	rs := &RasterizerState{
		desc: *desc,
		primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: desc.FrontFace,
			CullMode:  desc.CullMode,
		},
	}
	d.track(&rs.object, desc.Label)
	return rs, nil
}

// CreateSampler creates a HAL sampler.
func (d *Device) CreateSampler(desc *device.SamplerDesc) (device.Sampler, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	sampler, err := d.hal.CreateSampler(samplerToHAL(desc))
	if err != nil {
		return nil, fmt.Errorf("wgpu: create sampler %q: %w: %w", desc.Label, device.ErrObjectCreation, err)
	}
	s := &Sampler{desc: *desc, sampler: sampler}
	d.track(&s.object, desc.Label)
	return s, nil
}

// Release frees obj. Releasing an object twice, or one created by another
// device, is logged and otherwise ignored.
func (d *Device) Release(obj device.Object) {
	if obj == nil {
		return
	}
	r, ok := obj.(releasable)
	if !ok || r.base().owner != d {
		d.log().Warn("wgpu: release of foreign object ignored", "kind", obj.Kind(), "label", obj.Label(), "err", ErrForeignObject)
		return
	}
	if !r.base().released.CompareAndSwap(false, true) {
		d.log().Warn("wgpu: double release ignored", "kind", obj.Kind(), "label", obj.Label(), "err", ErrReleased)
		return
	}
	r.destroy(d.hal)
	d.live.Add(-1)
}
