// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gpuutil/device"
)

// countingBackend counts compiles and delegates to naga SPIR-V.
type countingBackend struct {
	calls int
	naga  *NagaBackend
}

func (b *countingBackend) Name() string { return "counting" }

func (b *countingBackend) Compile(req Request) Output {
	b.calls++
	return b.naga.Compile(req)
}

func TestBytecodeCacheCompilesOnce(t *testing.T) {
	be := &countingBackend{naga: NewNagaBackend(TargetSPIRV)}
	c, dev := newCompiler(t, WithBackend(be))
	bc := NewBytecodeCache(c, 8)

	for range 3 {
		cs, err := bc.Compile([]byte(pixelSrc), device.StagePixel, 0)
		if err != nil {
			t.Fatalf("Compile() error = %v", err)
		}
		dev.Release(cs.Shader)
	}
	if be.calls != 1 {
		t.Errorf("backend called %d times, want 1", be.calls)
	}
	if s := bc.Stats(); s.Len != 1 || s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() = %+v", s)
	}

	// Different flags or entry point are separate entries.
	if _, err := bc.Bytecode([]byte(pixelSrc), device.StagePixel, FlagDebug); err != nil {
		t.Fatal(err)
	}
	if be.calls != 2 {
		t.Errorf("backend called %d times after flag change, want 2", be.calls)
	}
}

func TestBytecodeCacheReturnsCopies(t *testing.T) {
	c, _ := newCompiler(t)
	bc := NewBytecodeCache(c, 0)

	first, err := bc.Bytecode([]byte(vertexSrc), device.StageVertex, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Clone(first.Code)
	first.Code[0] = 0

	second, err := bc.Bytecode([]byte(vertexSrc), device.StageVertex, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(second.Code, want) {
		t.Error("caller mutation reached the cache")
	}
}

func TestBytecodeCacheSkipsFailures(t *testing.T) {
	be := &countingBackend{naga: NewNagaBackend(TargetSPIRV)}
	c, _ := newCompiler(t, WithBackend(be))
	bc := NewBytecodeCache(c, 0)

	for range 2 {
		if _, err := bc.Bytecode([]byte("int main() { return }"), device.StagePixel, 0); !errors.Is(err, ErrCompileFailed) {
			t.Fatalf("error = %v, want ErrCompileFailed", err)
		}
	}
	if be.calls != 2 || bc.Stats().Len != 0 {
		t.Errorf("failure cached: calls %d, len %d", be.calls, bc.Stats().Len)
	}
}

func TestBytecodeCacheRebind(t *testing.T) {
	be := &countingBackend{naga: NewNagaBackend(TargetSPIRV)}
	oldC, _ := newCompiler(t, WithBackend(be))
	bc := NewBytecodeCache(oldC, 0)
	if _, err := bc.Bytecode([]byte(pixelSrc), device.StagePixel, 0); err != nil {
		t.Fatal(err)
	}

	newC, newDev := newCompiler(t, WithBackend(be))
	rebound := bc.Rebind(newC)
	if rebound.Compiler() != newC {
		t.Fatal("Rebind kept the old compiler")
	}
	cs, err := rebound.Compile([]byte(pixelSrc), device.StagePixel, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer newDev.Release(cs.Shader)
	if be.calls != 1 {
		t.Errorf("backend called %d times, want 1 across devices", be.calls)
	}
	if newDev.LiveObjects() != 1 {
		t.Error("shader not created on the new device")
	}

	rebound.Reset()
	if bc.Stats().Len != 0 {
		t.Error("Reset did not clear shared entries")
	}
}
