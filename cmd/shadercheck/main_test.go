// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gpuutil/device"
)

func writeShader(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shader.wgsl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseStage(t *testing.T) {
	tests := map[string]device.Stage{
		"vertex":  device.StageVertex,
		"ps_5_0":  device.StagePixel,
		"compute": device.StageCompute,
	}
	for name, want := range tests {
		got, err := parseStage(name)
		if err != nil || got != want {
			t.Errorf("parseStage(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := parseStage("hull"); err == nil {
		t.Error("parseStage(hull) accepted")
	}
}

func TestRunOK(t *testing.T) {
	path := writeShader(t, "@fragment\nfn main() -> @location(0) vec4<f32> {\n    return vec4<f32>(1.0, 0.0, 0.0, 1.0);\n}\n")
	out := filepath.Join(t.TempDir(), "out.spv")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", out, path}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "ok: pixel main") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if data, err := os.ReadFile(out); err != nil || len(data) == 0 {
		t.Errorf("bytecode not written: %v", err)
	}
}

func TestRunCompileError(t *testing.T) {
	path := writeShader(t, "int main() { return }")
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), ": error: ") {
		t.Errorf("stdout lacks an error diagnostic: %q", stdout.String())
	}
}

func TestRunStock(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-stock"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr.String())
	}
	for _, want := range []string{"blend-disabled:rgba", "stencil-write-always", "sampler:linear-clamp"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout lacks %q", want)
		}
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("run(nil) = %d, want 2", code)
	}
	if code := run([]string{"-target", "metal", "x.wgsl"}, &stdout, &stderr); code != 2 {
		t.Errorf("run(-target metal) = %d, want 2", code)
	}
}

func TestRunUnknownBackend(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-backend", "vulkan", "-stock"}, &stdout, &stderr); code != 1 {
		t.Errorf("run(-backend vulkan) = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "not available") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunHelpListsBackends(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-h) = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "wgpu-noop") {
		t.Errorf("usage lacks the registered backends: %q", stderr.String())
	}
}

func TestRunOutputNeedsSingleFile(t *testing.T) {
	a := writeShader(t, "@fragment\nfn main() -> @location(0) vec4<f32> {\n    return vec4<f32>(1.0, 0.0, 0.0, 1.0);\n}\n")
	b := writeShader(t, "@fragment\nfn main() -> @location(0) vec4<f32> {\n    return vec4<f32>(0.0, 1.0, 0.0, 1.0);\n}\n")
	out := filepath.Join(t.TempDir(), "out.spv")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", out, a, b}, &stdout, &stderr); code != 2 {
		t.Fatalf("run(-o with two files) = %d, want 2", code)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite usage error: %v", err)
	}
}
