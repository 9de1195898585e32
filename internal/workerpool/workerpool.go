// Copyright 2025 The go-hrbf Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for evaluating
// independent sample points in parallel. Workers are spawned once by New and
// reused by every call until Close.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	results := make([]float64, len(xs))
//	pool.ParallelFor(len(xs), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        results[i] = k.F(xs[i])
//	    }
//	})
//
// Callers write results by index, so output order never depends on
// scheduling.
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of goroutines that execute submitted work. A Pool may
// be shared by concurrent callers.
type Pool struct {
	workers int
	work    chan task

	mu     sync.RWMutex // guards closed and sends on work
	closed bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers. If workers <= 0,
// GOMAXPROCS workers are started.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		work:    make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.work {
		t.fn()
		t.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after pending work completes. It is safe to call
// Close more than once, and while other goroutines are submitting work. A
// closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.work)
	}
}

// submit queues t, or runs it on the calling goroutine once the pool is
// closed.
func (p *Pool) submit(t task) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		t.fn()
		t.done.Done()
		return
	}
	p.work <- t
	p.mu.RUnlock()
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each. It blocks until every range is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.submit(task{fn: func() { fn(start, end) }, done: &wg})
	}
	wg.Wait()
}

// ForEach calls fn(i) for every i in [0, n), handing out indices one at a
// time so uneven work balances across workers. Once ctx is done no further
// indices are handed out and ForEach returns ctx.Err() after in-flight calls
// finish.
func (p *Pool) ForEach(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	var next atomic.Int64
	claim := func() {
		for ctx.Err() == nil {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	}

	workers := min(p.workers, n)
	if workers == 1 {
		claim()
		return ctx.Err()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.submit(task{fn: claim, done: &wg})
	}
	wg.Wait()
	return ctx.Err()
}
