// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"crypto/sha256"
	"slices"

	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/cache"
)

type cacheKey struct {
	source  [sha256.Size]byte
	stage   device.Stage
	flags   Flags
	entry   string
	backend string
}

// CacheStats reports BytecodeCache usage.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// BytecodeCache memoizes offline compiles keyed by source content, stage,
// flags, entry point and backend. Bytecode does not depend on the device, so
// a cache outlives device loss: Rebind it to the compiler of the new device.
//
// A cache hit skips the backend entirely, so warnings are reported only on
// the first compile of a source. Failed compiles are not cached. Misses on
// different sources compile concurrently; concurrent misses on the same
// source share one compile.
type BytecodeCache struct {
	compiler *Compiler
	entries  *cache.Cache[cacheKey, *Bytecode]
}

// NewBytecodeCache returns a cache compiling through c and holding at most
// capacity results. A capacity of 0 means unbounded.
func NewBytecodeCache(c *Compiler, capacity int) *BytecodeCache {
	return &BytecodeCache{
		compiler: c,
		entries:  cache.New[cacheKey, *Bytecode](capacity),
	}
}

// Rebind returns a cache sharing b's entries that creates shaders through c.
func (b *BytecodeCache) Rebind(c *Compiler) *BytecodeCache {
	return &BytecodeCache{compiler: c, entries: b.entries}
}

// Compiler returns the compiler shaders are created with.
func (b *BytecodeCache) Compiler() *Compiler { return b.compiler }

// Bytecode returns the compiled bytecode of source, compiling it on a miss.
// The result is a copy the caller may keep.
func (b *BytecodeCache) Bytecode(source []byte, stage device.Stage, flags Flags, opts ...CompileOption) (*Bytecode, error) {
	var co compileOptions
	for _, opt := range opts {
		opt(&co)
	}
	key := cacheKey{
		source:  sha256.Sum256(source),
		stage:   stage,
		flags:   flags,
		entry:   co.entryPoint,
		backend: b.compiler.Backend().Name(),
	}
	bc, err := b.entries.GetOrLoad(key, func() (*Bytecode, error) {
		return b.compiler.CompileBytecode(source, stage, flags, opts...)
	})
	if err != nil {
		return nil, err
	}
	out := *bc
	out.Code = slices.Clone(bc.Code)
	out.Diagnostics = slices.Clone(bc.Diagnostics)
	return &out, nil
}

// Compile is Compiler.Compile with the offline step served from the cache.
func (b *BytecodeCache) Compile(source []byte, stage device.Stage, flags Flags, opts ...CompileOption) (*CompiledShader, error) {
	bc, err := b.Bytecode(source, stage, flags, opts...)
	if err != nil {
		return nil, err
	}
	return b.compiler.CreateShader(bc, opts...)
}

// Reset drops every cached result.
func (b *BytecodeCache) Reset() { b.entries.Clear() }

// Stats returns a snapshot of cache usage.
func (b *BytecodeCache) Stats() CacheStats {
	s := b.entries.Stats()
	return CacheStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions}
}
