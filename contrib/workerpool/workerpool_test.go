// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	require.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var mu sync.Mutex
	var ranges [][2]int
	covered := make([]int32, 37)
	pool.ParallelForAligned(len(covered), 8, func(start, end int) {
		mu.Lock()
		ranges = append(ranges, [2]int{start, end})
		mu.Unlock()
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	for i, c := range covered {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
	for _, r := range ranges {
		require.Zero(t, r[0]%8, "range %v does not start on a batch boundary", r)
	}
	require.LessOrEqual(t, len(ranges), 3)
}

func TestChunks(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	require.Equal(t, [][2]int{{0, 5}}, pool.chunks(5, 8))
	require.Equal(t, [][2]int{{0, 8}, {8, 16}, {16, 20}}, pool.chunks(20, 8))
	require.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}}, pool.chunks(10, 1))
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomicBatched(n, 10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomicBatched(-1, 4, func(start, end int) { called = true })
	require.False(t, called)
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	var calls int
	pool.ParallelFor(100, func(start, end int) {
		calls++
		require.Equal(t, 0, start)
		require.Equal(t, 100, end)
	})
	require.Equal(t, 1, calls)
}

func TestParallelForContext(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var sum atomic.Int64
	err := pool.ParallelForContext(context.Background(), 1000, 16, func(_ context.Context, start, end int) error {
		for i := start; i < end; i++ {
			sum.Add(int64(i))
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(999*1000/2), sum.Load())
}

func TestParallelForContextError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	err := pool.ParallelForContext(context.Background(), 64, 1, func(_ context.Context, start, _ int) error {
		if start == 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestParallelForContextCanceled(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.ParallelForContext(ctx, 10, 1, func(context.Context, int, int) error {
		t.Error("fn must not run on a canceled context")
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float64, 1<<16)
	for b.Loop() {
		pool.ParallelForAligned(len(data), 8, func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
