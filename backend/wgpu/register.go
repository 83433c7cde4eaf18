// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/gogpu/gpuutil/backend"
	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/headless"
)

func init() {
	backend.Register(backend.BackendWGPUNoop, openNoop)
}

// openNoop opens a Device on the wgpu noop HAL.
func openNoop() (device.Device, func(), error) {
	halDev, cleanup, err := headless.Open()
	if err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(halDev)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return dev, cleanup, nil
}
