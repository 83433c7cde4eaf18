// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuutil

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gpuutil/backend/wgpu"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/logging"
	"github.com/gogpu/gpuutil/shader"
	"github.com/gogpu/gpuutil/stock"
)

// ErrClosed is returned by Recover after Close.
var ErrClosed = errors.New("gpuutil: context closed")

// Context owns the shader compiler and the stock object pool of one device.
//
// The owner of the device creates one Context per device, calls Recover after
// device loss and Close at shutdown. The compiler and pool returned by the
// accessors stay valid until the next Recover or Close.
type Context struct {
	opts options

	mu       sync.RWMutex
	dev      device.Device
	compiler *shader.Compiler
	shaders  *shader.BytecodeCache
	pool     *stock.Pool
	closed   bool
}

// New creates a Context for dev and populates its stock pool.
func New(dev device.Device, opts ...Option) (*Context, error) {
	if dev == nil {
		return nil, fmt.Errorf("gpuutil: %w", device.ErrNilDevice)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		opts: o,
		pool: stock.New(o.stockOptions()...),
	}
	if err := c.attach(dev, !o.skipStockPool); err != nil {
		return nil, err
	}
	c.log().Info("gpuutil: context created", "backend", c.compiler.Backend().Name(), "stock", c.pool.Len())
	return c, nil
}

// NewFromProvider creates a Context on the HAL device of a host application.
// The provider's Device must be a gogpu/wgpu hal.Device; see wgpu.FromProvider.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Context, error) {
	if provider == nil {
		return nil, fmt.Errorf("gpuutil: %w", device.ErrNilDevice)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dev, err := wgpu.FromProvider(provider, o.wgpuOptions()...)
	if err != nil {
		return nil, fmt.Errorf("gpuutil: %w", err)
	}
	return New(dev, opts...)
}

func (c *Context) log() *slog.Logger { return logging.Or(c.opts.logger) }

// attach points the context at dev: a new compiler, and the stock catalog
// rebuilt on dev when populate is set.
func (c *Context) attach(dev device.Device, populate bool) error {
	compiler, err := shader.NewCompiler(dev, c.opts.shaderOptions()...)
	if err != nil {
		return fmt.Errorf("gpuutil: %w", err)
	}
	if populate {
		if err := c.pool.Recreate(dev); err != nil {
			return fmt.Errorf("gpuutil: %w", err)
		}
	}
	c.dev = dev
	c.compiler = compiler
	switch {
	case c.shaders != nil:
		c.shaders = c.shaders.Rebind(compiler)
	case c.opts.cacheShaders:
		c.shaders = shader.NewBytecodeCache(compiler, c.opts.cacheCapacity)
	}
	return nil
}

// Compiler returns the shader compiler of the current device.
func (c *Context) Compiler() *shader.Compiler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.compiler
}

// Shaders returns the bytecode cache bound to the current compiler, or nil
// without WithBytecodeCache.
func (c *Context) Shaders() *shader.BytecodeCache {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.shaders
}

// Stock returns the stock object pool.
func (c *Context) Stock() *stock.Pool { return c.pool }

// Device returns the current device.
func (c *Context) Device() device.Device {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dev
}

// Recover moves the context to dev after device loss. The stock catalog is
// destroyed and created again in full. On failure the pool is left empty and
// the context keeps its previous device.
func (c *Context) Recover(dev device.Device) error {
	if dev == nil {
		return fmt.Errorf("gpuutil: %w", device.ErrNilDevice)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err := c.attach(dev, true); err != nil {
		c.log().Error("gpuutil: device recovery failed", "err", err)
		return err
	}
	c.log().Info("gpuutil: device recovered", "stock", c.pool.Len())
	return nil
}

// Close destroys the stock catalog. It does not release shaders, which belong
// to the caller, or the device. Close is idempotent.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.pool.Destroy()
}
