// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/logging"
)

type catalog [NumKeys]device.Object

// Pool owns the stock catalog of one device.
//
// Accessors may be called from any goroutine once Create has returned.
// Create, Destroy and Recreate exclude all other calls. Handles returned by
// the accessors stay owned by the pool and are valid until Destroy.
type Pool struct {
	logger *slog.Logger

	mu      sync.RWMutex
	dev     device.Device
	entries *catalog
}

// New returns an empty pool.
func New(opts ...Option) *Pool {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Pool{logger: o.logger}
}

func (p *Pool) log() *slog.Logger { return logging.Or(p.logger) }

// Create populates every catalog entry on dev.
//
// Either all entries are created or none: if any creation fails, the objects
// created so far are released and the error, wrapping
// device.ErrObjectCreation, is returned with the pool left empty.
func (p *Pool) Create(dev device.Device) error {
	if dev == nil {
		return fmt.Errorf("stock: %w", device.ErrNilDevice)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.createLocked(dev)
}

func (p *Pool) createLocked(dev device.Device) error {
	if p.entries != nil {
		return ErrAlreadyCreated
	}

	var c catalog
	for k := range NumKeys {
		obj, err := createEntry(dev, k)
		if err == nil && obj == nil {
			err = errors.New("device returned no object")
		}
		if err != nil {
			releaseAll(dev, &c)
			p.log().Error("stock: create failed", "key", k, "err", err)
			if errors.Is(err, device.ErrObjectCreation) {
				return fmt.Errorf("stock: create %v: %w", k, err)
			}
			return fmt.Errorf("stock: create %v: %w: %w", k, device.ErrObjectCreation, err)
		}
		c[k] = obj
	}

	p.dev = dev
	p.entries = &c
	p.log().Debug("stock: catalog created", "entries", len(c))
	return nil
}

// Destroy releases every catalog entry exactly once. It does nothing on a
// pool that was never created or is already destroyed.
func (p *Pool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyLocked()
}

func (p *Pool) destroyLocked() {
	if p.entries == nil {
		return
	}
	releaseAll(p.dev, p.entries)
	p.entries = nil
	p.dev = nil
	p.log().Debug("stock: catalog destroyed")
}

// Recreate destroys the catalog, if any, and creates it on dev. It is the
// device-loss path: no reader observes a mix of old and new handles.
func (p *Pool) Recreate(dev device.Device) error {
	if dev == nil {
		return fmt.Errorf("stock: %w", device.ErrNilDevice)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyLocked()
	return p.createLocked(dev)
}

// releaseAll releases the non-nil entries of c in reverse key order and
// clears them.
func releaseAll(dev device.Device, c *catalog) {
	for k := len(c) - 1; k >= 0; k-- {
		if c[k] != nil {
			dev.Release(c[k])
			c[k] = nil
		}
	}
}

func (p *Pool) get(k Key) device.Object {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.entries == nil || !k.Valid() {
		return nil
	}
	return p.entries[k]
}

// Lookup returns the entry stored under k.
func (p *Pool) Lookup(k Key) (device.Object, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("stock: %w: %v", device.ErrInvalidDescriptor, k)
	}
	obj := p.get(k)
	if obj == nil {
		return nil, ErrNotCreated
	}
	return obj, nil
}

// BlendDisabled returns the blend state that writes mask with blending off.
// It returns nil before Create or for a mask outside 0..15.
func (p *Pool) BlendDisabled(mask gputypes.ColorWriteMask) device.BlendState {
	k, ok := BlendKey(mask)
	if !ok {
		return nil
	}
	bs, _ := p.get(k).(device.BlendState)
	return bs
}

// DepthStencilDisabled returns the state with depth and stencil tests off.
func (p *Pool) DepthStencilDisabled() device.DepthStencilState {
	ds, _ := p.get(KeyDepthStencilDisabled).(device.DepthStencilState)
	return ds
}

// StencilWriteAlways returns the state that ignores depth and stamps the
// stencil reference.
func (p *Pool) StencilWriteAlways() device.DepthStencilState {
	ds, _ := p.get(KeyStencilWriteAlways).(device.DepthStencilState)
	return ds
}

// RasterNoCull returns the solid rasterizer state without culling.
func (p *Pool) RasterNoCull() device.RasterizerState {
	rs, _ := p.get(KeyRasterNoCull).(device.RasterizerState)
	return rs
}

// Sampler returns the sampler with filter f and addressing a.
func (p *Pool) Sampler(f Filter, a Address) device.Sampler {
	k, ok := SamplerKey(f, a)
	if !ok {
		return nil
	}
	s, _ := p.get(k).(device.Sampler)
	return s
}

// Created reports whether the catalog is populated.
func (p *Pool) Created() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries != nil
}

// Len returns the number of live entries: NumKeys after Create, else 0.
func (p *Pool) Len() int {
	if p.Created() {
		return int(NumKeys)
	}
	return 0
}

// Device returns the device the catalog lives on, or nil.
func (p *Pool) Device() device.Device {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dev
}
