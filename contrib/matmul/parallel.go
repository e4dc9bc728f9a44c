// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matmul

import (
	"context"

	"github.com/ajroetker/go-entity/contrib/workerpool"
	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

// MinParallelOps is the minimum number of scalar multiply-adds before
// ParallelMatMul uses the pool.
const MinParallelOps = 64 * 64 * 64

// RowsPerStrip is the granularity of the row split.
const RowsPerStrip = 16

// ParallelMatMul computes C = A * B like MatMul, splitting the rows of C
// across pool. Small products run on the caller's goroutine.
func ParallelMatMul[E any, U entity.Unit](pool *workerpool.Pool, ent entity.Entity[E, U], t *hwy.Target, a, b, c []E, m, n, k int) {
	checkDims("A", len(a), m*k)
	checkDims("B", len(b), k*n)
	checkDims("C", len(c), m*n)
	if m*n*k < MinParallelOps {
		matmulRows(ent, t, a, b, c, 0, m, n, k)
		return
	}
	pool.ParallelForAligned(m, RowsPerStrip, func(start, end int) {
		matmulRows(ent, t, a, b, c, start, end, n, k)
	})
}

// MatMulContext is ParallelMatMul with cancellation: strips that have not
// started when ctx is done are skipped and ctx.Err() is returned. C is
// partially written in that case.
func MatMulContext[E any, U entity.Unit](ctx context.Context, pool *workerpool.Pool, ent entity.Entity[E, U], t *hwy.Target, a, b, c []E, m, n, k int) error {
	checkDims("A", len(a), m*k)
	checkDims("B", len(b), k*n)
	checkDims("C", len(c), m*n)
	return pool.ParallelForContext(ctx, m, RowsPerStrip, func(ctx context.Context, start, end int) error {
		for i := start; i < end; i += RowsPerStrip {
			if err := ctx.Err(); err != nil {
				return err
			}
			matmulRows(ent, t, a, b, c, i, min(i+RowsPerStrip, end), n, k)
		}
		return nil
	})
}
