// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"testing"

	"github.com/gogpu/gpuutil/backend"
)

func TestRegisteredNoopBackend(t *testing.T) {
	if !backend.IsRegistered(backend.BackendWGPUNoop) {
		t.Fatal("wgpu-noop backend not registered")
	}
	dev, closeDev, err := backend.Open(backend.BackendWGPUNoop)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer closeDev()

	d, ok := dev.(*Device)
	if !ok {
		t.Fatalf("Open() = %T, want *Device", dev)
	}
	if d.HAL() == nil || d.LiveObjects() != 0 {
		t.Error("fresh noop device is not usable")
	}
}
