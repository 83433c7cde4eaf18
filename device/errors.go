// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "errors"

// Package errors shared by every Device implementation.
var (
	// ErrObjectCreation is returned when the device refuses to create a
	// shader or state object from an otherwise valid input.
	ErrObjectCreation = errors.New("device: object creation failed")

	// ErrInvalidDescriptor is returned when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("device: invalid descriptor")

	// ErrUnsupportedStage is returned when a backend cannot create shaders
	// for the requested stage.
	ErrUnsupportedStage = errors.New("device: unsupported shader stage")

	// ErrInvalidBytecode is returned when shader bytecode is empty or not in
	// the format the backend consumes.
	ErrInvalidBytecode = errors.New("device: invalid shader bytecode")

	// ErrNilDevice is returned when a nil device is passed where one is required.
	ErrNilDevice = errors.New("device: device is nil")
)
