// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gpuutil/device"
)

// Key identifies one catalog entry.
type Key uint8

// numBlendKeys is the number of 4-bit color write masks.
const numBlendKeys = 16

// Keys 0 through 15 are the blend-disabled states; the key value is the color
// write mask. Use BlendKey to obtain them.
const (
	KeyDepthStencilDisabled Key = numBlendKeys + iota
	KeyStencilWriteAlways
	KeyRasterNoCull
	KeySamplerPointWrap
	KeySamplerPointClamp
	KeySamplerLinearWrap
	KeySamplerLinearClamp

	// NumKeys is the size of the catalog.
	NumKeys
)

// Filter selects sampler filtering.
type Filter uint8

const (
	// FilterPoint samples the nearest texel.
	FilterPoint Filter = iota
	// FilterLinear interpolates between texels.
	FilterLinear
)

func (f Filter) String() string {
	switch f {
	case FilterPoint:
		return "point"
	case FilterLinear:
		return "linear"
	default:
		return fmt.Sprintf("Filter(%d)", uint8(f))
	}
}

// Address selects sampler addressing on all three axes.
type Address uint8

const (
	// AddressWrap repeats the texture.
	AddressWrap Address = iota
	// AddressClamp clamps to the edge texel.
	AddressClamp
)

func (a Address) String() string {
	switch a {
	case AddressWrap:
		return "wrap"
	case AddressClamp:
		return "clamp"
	default:
		return fmt.Sprintf("Address(%d)", uint8(a))
	}
}

// BlendKey returns the key of the blend-disabled state writing mask.
func BlendKey(mask gputypes.ColorWriteMask) (Key, bool) {
	if mask&^gputypes.ColorWriteMaskAll != 0 {
		return 0, false
	}
	return Key(mask), true
}

// SamplerKey returns the key of the sampler with the given filter and
// addressing.
func SamplerKey(f Filter, a Address) (Key, bool) {
	if f > FilterLinear || a > AddressClamp {
		return 0, false
	}
	return KeySamplerPointWrap + Key(f)*2 + Key(a), true
}

// Keys returns every key in catalog order.
func Keys() []Key {
	keys := make([]Key, NumKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Valid reports whether k names a catalog entry.
func (k Key) Valid() bool { return k < NumKeys }

// Kind returns the kind of object stored under k.
func (k Key) Kind() device.Kind {
	switch {
	case k < numBlendKeys:
		return device.KindBlendState
	case k == KeyDepthStencilDisabled, k == KeyStencilWriteAlways:
		return device.KindDepthStencilState
	case k == KeyRasterNoCull:
		return device.KindRasterizerState
	case k < NumKeys:
		return device.KindSampler
	default:
		return 0
	}
}

// sampler returns the filter and addressing of a sampler key.
func (k Key) sampler() (Filter, Address) {
	i := k - KeySamplerPointWrap
	return Filter(i / 2), Address(i % 2)
}

func (k Key) String() string {
	switch {
	case k < numBlendKeys:
		return "blend-disabled:" + maskString(gputypes.ColorWriteMask(k))
	case k == KeyDepthStencilDisabled:
		return "depth-stencil-disabled"
	case k == KeyStencilWriteAlways:
		return "stencil-write-always"
	case k == KeyRasterNoCull:
		return "raster-no-cull"
	case k < NumKeys:
		f, a := k.sampler()
		return "sampler:" + f.String() + "-" + a.String()
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// maskString spells a write mask as channel letters, "none" when empty.
func maskString(m gputypes.ColorWriteMask) string {
	if m == gputypes.ColorWriteMaskNone {
		return "none"
	}
	var b strings.Builder
	for _, c := range [...]struct {
		bit    gputypes.ColorWriteMask
		letter byte
	}{
		{gputypes.ColorWriteMaskRed, 'r'},
		{gputypes.ColorWriteMaskGreen, 'g'},
		{gputypes.ColorWriteMaskBlue, 'b'},
		{gputypes.ColorWriteMaskAlpha, 'a'},
	} {
		if m&c.bit != 0 {
			b.WriteByte(c.letter)
		}
	}
	return b.String()
}
