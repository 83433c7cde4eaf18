// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless opens HAL devices on the noop backend. Objects created on
// them are never executed, which is enough for offline shader validation and
// for tests that exercise object lifetimes.
package headless

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// Open returns a noop HAL device and a function that destroys it together
// with its instance.
func Open() (hal.Device, func(), error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("headless: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, errors.New("headless: no adapter")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, fmt.Errorf("headless: open adapter: %w", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, cleanup, nil
}
