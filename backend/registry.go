// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/gpuutil/device"
)

// registry holds registered device factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	backendPriority = []string{BackendWGPUNoop}
)

// Register registers a device factory with the given name.
// This is typically called from init() functions in backend packages.
// If a factory with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a factory from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open opens a device on the named backend.
func Open(name string) (device.Device, func(), error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return open(name, factory)
}

// Default opens a device on the best available backend: the first of the
// priority list that is registered, else any registered backend.
func Default() (device.Device, func(), error) {
	registryMu.RLock()
	name, factory := pickDefault()
	registryMu.RUnlock()
	if factory == nil {
		return nil, nil, ErrBackendNotAvailable
	}
	return open(name, factory)
}

func pickDefault() (string, Factory) {
	for _, name := range backendPriority {
		if f, ok := factories[name]; ok {
			return name, f
		}
	}
	// Fallback: first available in name order.
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", nil
	}
	slices.Sort(names)
	return names[0], factories[names[0]]
}

func open(name string, factory Factory) (device.Device, func(), error) {
	dev, closeFn, err := factory()
	if err != nil {
		return nil, nil, fmt.Errorf("backend %s: %w", name, err)
	}
	if dev == nil {
		if closeFn != nil {
			closeFn()
		}
		return nil, nil, fmt.Errorf("backend %s: %w", name, ErrNoDevice)
	}
	if closeFn == nil {
		closeFn = func() {}
	}
	return dev, closeFn, nil
}
