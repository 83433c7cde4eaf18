// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend is a registry of device backends.
//
// A backend package registers a [Factory] from its init function. Tools pick
// a backend by name at run time without importing GPU API packages:
//
//	import _ "github.com/gogpu/gpuutil/backend/wgpu"
//
//	dev, closeDev, err := backend.Open(backend.BackendWGPUNoop)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer closeDev()
//
// Use Default() to open the best available backend.
//
// # Available Backends
//
// - "wgpu-noop": gogpu/wgpu HAL noop device (registered by backend/wgpu)
package backend
