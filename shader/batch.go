// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"runtime"

	"github.com/gogpu/gpuutil/device"
	"github.com/gogpu/gpuutil/internal/parallel"
)

// Job is one source of a CompileAll batch.
type Job struct {
	Source     []byte
	Stage      device.Stage
	Flags      Flags
	EntryPoint string
}

// Result is the outcome of one Job: bytecode, or the error CompileBytecode
// would have returned.
type Result struct {
	Bytecode *Bytecode
	Err      error
}

// CompileAll runs the offline compile of every job on up to workers
// goroutines (GOMAXPROCS when workers <= 0) and returns the results in job
// order. No device object is created; pass each Bytecode to CreateShader on
// the goroutine that owns the device.
func (c *Compiler) CompileAll(jobs []Job, workers int) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewWorkerPool(min(workers, len(jobs)))
	defer pool.Close()

	pool.Run(len(jobs), func(i int) {
		j := jobs[i]
		var opts []CompileOption
		if j.EntryPoint != "" {
			opts = append(opts, WithEntryPoint(j.EntryPoint))
		}
		bc, err := c.CompileBytecode(j.Source, j.Stage, j.Flags, opts...)
		results[i] = Result{Bytecode: bc, Err: err}
	})
	return results
}
