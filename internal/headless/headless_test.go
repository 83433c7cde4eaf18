// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"testing"

	"github.com/gogpu/wgpu/hal"
)

func TestOpen(t *testing.T) {
	dev, cleanup, err := Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cleanup()

	if dev == nil {
		t.Fatal("Open() returned nil device")
	}
	module, err := dev.CreateShaderModule(&hal.ShaderModuleDescriptor{Label: "probe"})
	if err != nil {
		t.Fatalf("CreateShaderModule() error = %v", err)
	}
	dev.DestroyShaderModule(module)
}
