// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines pulling jobs from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	closeMu sync.RWMutex
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		job()
	}
}

// Run calls fn(i) for every i in [0, n) on the workers and waits for all of
// them. On a closed pool fn runs on the calling goroutine.
func (p *WorkerPool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if !p.running.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(n)
	for i := range n {
		p.queue <- func() {
			defer done.Done()
			fn(i)
		}
	}
	done.Wait()
}

// Close stops the workers after the queued jobs finish.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
