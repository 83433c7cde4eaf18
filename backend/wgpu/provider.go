// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// FromProvider wraps the HAL device shared by a host application.
//
// The provider either exposes HalDevice() any returning a hal.Device, or is a
// gpucontext.DeviceProvider whose Device() is itself a hal.Device.
func FromProvider(provider any, opts ...Option) (*Device, error) {
	type halProvider interface {
		HalDevice() any
	}
	if hp, ok := provider.(halProvider); ok {
		dev, ok := hp.HalDevice().(hal.Device)
		if !ok || dev == nil {
			return nil, fmt.Errorf("%w: HalDevice returned %T", ErrNoHALDevice, hp.HalDevice())
		}
		return NewDevice(dev, opts...)
	}
	if dp, ok := provider.(gpucontext.DeviceProvider); ok {
		dev, ok := dp.Device().(hal.Device)
		if !ok || dev == nil {
			return nil, fmt.Errorf("%w: Device returned %T", ErrNoHALDevice, dp.Device())
		}
		return NewDevice(dev, opts...)
	}
	return nil, fmt.Errorf("%w: %T", ErrNoHALDevice, provider)
}
