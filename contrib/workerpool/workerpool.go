// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool partitions entity kernels across a fixed set of
// goroutines. The entity layer itself never spawns goroutines; callers that
// want parallelism split their output with a Pool so that no two workers
// write the same region.
//
// A Pool is created once and reused:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Row ranges start on multiples of the batch width.
//	pool.ParallelForAligned(m, k.Lanes(t), func(start, end int) {
//	    kernelRows(start, end)
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every parallel call.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool of numWorkers goroutines, or GOMAXPROCS goroutines if
// numWorkers <= 0. Workers persist until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes. Calling Close more
// than once is safe; a closed pool runs every call on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// chunks splits [0, n) into at most p.numWorkers contiguous ranges whose
// boundaries are multiples of align (except the final end, which is n).
func (p *Pool) chunks(n, align int) [][2]int {
	align = max(align, 1)
	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers <= 1 {
		return [][2]int{{0, n}}
	}
	perWorker := (blocks + workers - 1) / workers * align
	ranges := make([][2]int, 0, workers)
	for start := 0; start < n; start += perWorker {
		ranges = append(ranges, [2]int{start, min(start+perWorker, n)})
	}
	return ranges
}

// ParallelFor calls fn on contiguous sub-ranges covering [0, n) and blocks
// until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every sub-range starting at a
// multiple of align, so each worker begins on a full SIMD batch.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	ranges := p.chunks(n, align)
	if len(ranges) == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.workC <- task{fn: func() { fn(r[0], r[1]) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForAtomicBatched hands out [start, end) batches of batchSize
// indices through an atomic counter, which balances load when the cost per
// index varies (triangular loops, for example).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForContext runs fn over aligned sub-ranges of [0, n) with at most
// NumWorkers of them in flight. The first error cancels the context passed
// to the remaining calls and is returned. Ranges not yet started when ctx is
// done are skipped.
func (p *Pool) ParallelForContext(ctx context.Context, n, align int, fn func(ctx context.Context, start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.numWorkers)
	for _, r := range p.chunks(n, align) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, r[0], r[1])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
