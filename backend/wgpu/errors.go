// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Package errors for the wgpu device backend.
var (
	// ErrNoHALDevice is returned by FromProvider when the provider does not
	// expose a hal.Device.
	ErrNoHALDevice = errors.New("wgpu: provider does not expose a hal.Device")

	// ErrForeignObject is returned when an object created by another device
	// is passed to this one.
	ErrForeignObject = errors.New("wgpu: object not created by this device")

	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("wgpu: object already released")
)
