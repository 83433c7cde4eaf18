// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"

	"github.com/gogpu/gpuutil/device"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoDevice is returned when a factory reports success without a device.
	ErrNoDevice = errors.New("backend: factory returned no device")
)

// Backend names.
const (
	// BackendWGPUNoop is the gogpu/wgpu noop HAL. It creates every object
	// and executes nothing, which makes it the backend for offline tools
	// and tests.
	BackendWGPUNoop = "wgpu-noop"
)

// Factory opens a device. The returned close function releases the device
// and everything the factory allocated for it; it must not be nil on success.
type Factory func() (dev device.Device, closeFn func(), err error)
