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
	"fmt"

	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

func checkDims(name string, got, want int) {
	if got < want {
		panic(fmt.Sprintf("matmul: %s has %d elements, need %d", name, got, want))
	}
}

// MatMul computes C = A * B.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major), overwritten
//
// Each C[i,j] accumulates A[i,p]*B[p,j] in p order with fused multiply-adds,
// so the result does not depend on the target width.
func MatMul[E any, U entity.Unit](ent entity.Entity[E, U], t *hwy.Target, a, b, c []E, m, n, k int) {
	checkDims("A", len(a), m*k)
	checkDims("B", len(b), k*n)
	checkDims("C", len(c), m*n)
	matmulRows(ent, t, a, b, c, 0, m, n, k)
}

// matmulRows computes rows [rowStart, rowEnd) of C.
func matmulRows[E any, U entity.Unit](ent entity.Entity[E, U], t *hwy.Target, a, b, c []E, rowStart, rowEnd, n, k int) {
	lanes := ent.Lanes(t)
	zero := ent.SimdSplat(t, ent.Zero())
	for i := rowStart; i < rowEnd; i++ {
		cRow := c[i*n : (i+1)*n]
		aRow := a[i*k : (i+1)*k]
		for j := 0; j < n; j += lanes {
			acc := zero
			for p, aip := range aRow {
				acc = ent.SimdMulAdd(ent.SimdSplat(t, aip), ent.SimdLoad(t, b[p*n+j:(p+1)*n]), acc)
			}
			ent.SimdStore(acc, cRow[j:])
		}
	}
}

// MatVec computes y = A * x for an M x N row-major A.
func MatVec[E any, U entity.Unit](ent entity.Entity[E, U], t *hwy.Target, a, x, y []E, m, n int) {
	checkDims("A", len(a), m*n)
	checkDims("x", len(x), n)
	checkDims("y", len(y), m)
	lanes := ent.Lanes(t)
	zero := ent.SimdSplat(t, ent.Zero())
	for i := range m {
		row := a[i*n : (i+1)*n]
		acc := zero
		for j := 0; j < n; j += lanes {
			acc = ent.SimdMulAdd(ent.SimdLoad(t, row[j:]), ent.SimdLoad(t, x[j:n]), acc)
		}
		y[i] = ent.SimdReduceSum(acc)
	}
}

// MatMulScalar is the reference triple loop, kept for tests and
// benchmarking. It rounds exactly like MatMul.
func MatMulScalar[E any, U entity.Unit](ent entity.Entity[E, U], a, b, c []E, m, n, k int) {
	for i := range m {
		for j := range n {
			acc := ent.Zero()
			for p := range k {
				acc = ent.MulAdd(a[i*k+p], b[p*n+j], acc)
			}
			c[i*n+j] = acc
		}
	}
}
