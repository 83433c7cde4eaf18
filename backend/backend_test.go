// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gpuutil/device"
)

// stubDevice satisfies device.Device; no method is called.
type stubDevice struct{ device.Device }

func withRegistry(t *testing.T, reg map[string]Factory) {
	t.Helper()
	registryMu.Lock()
	saved := factories
	factories = reg
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		factories = saved
		registryMu.Unlock()
	})
}

func TestRegistryRegisterAndOpen(t *testing.T) {
	withRegistry(t, map[string]Factory{})

	closed := 0
	dev := &stubDevice{}
	Register("stub", func() (device.Device, func(), error) {
		return dev, func() { closed++ }, nil
	})
	if !IsRegistered("stub") {
		t.Fatal("stub not registered")
	}

	got, closeFn, err := Open("stub")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got != dev {
		t.Error("Open() returned a different device")
	}
	closeFn()
	if closed != 1 {
		t.Errorf("close called %d times, want 1", closed)
	}

	Unregister("stub")
	if IsRegistered("stub") {
		t.Error("stub still registered after Unregister")
	}
}

func TestRegistryOpenUnknown(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	if _, _, err := Open("vulkan"); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Open(vulkan) error = %v, want ErrBackendNotAvailable", err)
	}
	if _, _, err := Default(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() on empty registry error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegistryAvailableSorted(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	nop := func() (device.Device, func(), error) { return &stubDevice{}, nil, nil }
	Register("zeta", nop)
	Register("alpha", nop)
	if got := Available(); !slices.Equal(got, []string{"alpha", "zeta"}) {
		t.Errorf("Available() = %v", got)
	}
}

func TestRegistryDefaultPriority(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	preferred, other := &stubDevice{}, &stubDevice{}
	Register("aaa", func() (device.Device, func(), error) { return other, nil, nil })

	dev, closeFn, err := Default()
	if err != nil || dev != other {
		t.Fatalf("Default() fallback = %v, %v", dev, err)
	}
	closeFn() // replaced by a no-op when the factory returns nil

	Register(BackendWGPUNoop, func() (device.Device, func(), error) { return preferred, nil, nil })
	if dev, _, _ := Default(); dev != preferred {
		t.Error("Default() ignored the priority list")
	}
}

func TestRegistryFactoryFailure(t *testing.T) {
	withRegistry(t, map[string]Factory{})
	boom := errors.New("boom")
	Register("broken", func() (device.Device, func(), error) { return nil, nil, boom })
	if _, _, err := Open("broken"); !errors.Is(err, boom) {
		t.Errorf("Open(broken) error = %v, want boom", err)
	}

	closed := false
	Register("empty", func() (device.Device, func(), error) { return nil, func() { closed = true }, nil })
	if _, _, err := Open("empty"); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Open(empty) error = %v, want ErrNoDevice", err)
	}
	if !closed {
		t.Error("close function of an empty factory result not called")
	}
}
