// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stock keeps the fixed catalog of pipeline-state objects a renderer
// binds on almost every draw.
//
// The catalog holds 23 entries, each identified by a [Key]:
//
//   - 16 blend states with blending disabled, one per color write mask
//   - a depth-stencil state with both tests off
//   - a depth-stencil state that stamps the stencil reference on every fragment
//   - a solid rasterizer state without culling
//   - 4 samplers, {point, linear} × {wrap, clamp}
//
// Descriptors are derived from the key alone. A [Pool] creates every entry at
// once with [Pool.Create] and releases every entry with [Pool.Destroy]. Callers
// borrow handles through the accessors and never release them.
//
//	pool := stock.New()
//	if err := pool.Create(dev); err != nil {
//	    return err
//	}
//	defer pool.Destroy()
//
//	blend := pool.BlendDisabled(gputypes.ColorWriteMaskAll)
//	smp := pool.Sampler(stock.FilterLinear, stock.AddressClamp)
package stock
