// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the backend-neutral surface that shader compilation
// and stock state objects are created through.
//
// A [Device] turns descriptors into opaque handles and releases them again.
// Descriptors reuse the WebGPU enumerations from gputypes so that a backend
// built on gogpu/wgpu can consume them without translation tables, while a
// D3D-style backend can map them onto its own state objects.
//
// Handles returned by a Device are owned by whoever requested them. They are
// released with [Device.Release]; releasing the same handle twice or releasing
// a handle owned by a stock pool is a caller error.
//
// Example:
//
//	dev, err := wgpu.NewDevice(halDevice)
//	if err != nil {
//	    return err
//	}
//	sampler, err := dev.CreateSampler(&device.SamplerDesc{
//	    AddressModeU:  gputypes.AddressModeRepeat,
//	    AddressModeV:  gputypes.AddressModeRepeat,
//	    AddressModeW:  gputypes.AddressModeRepeat,
//	    MagFilter:     gputypes.FilterModeLinear,
//	    MinFilter:     gputypes.FilterModeLinear,
//	    MaxAnisotropy: 1,
//	})
package device
