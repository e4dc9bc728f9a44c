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

package vec

import (
	"fmt"

	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

// unroll is the number of independent accumulators a leaf keeps.
const unroll = 4

// leafBatches is the largest input, in groups of unroll batches, a leaf
// reduces directly. Longer inputs are split in half.
const leafBatches = 32

func checkLen(a, b int) {
	if a != b {
		panic(fmt.Sprintf("vec: length mismatch: %d != %d", a, b))
	}
}

// pairwise reduces [0, n) with leaf on blocks of at most leafBatches*step
// scalars, combining halves with add. Split points are multiples of step.
func pairwise[R any](n, step int, leaf func(lo, hi int) R, add func(R, R) R) R {
	var rec func(lo, hi int) R
	rec = func(lo, hi int) R {
		size := hi - lo
		if size <= leafBatches*step {
			return leaf(lo, hi)
		}
		mid := lo + (size/2+step-1)/step*step
		return add(rec(lo, mid), rec(mid, hi))
	}
	return rec(0, n)
}

// accumulate runs body over a leaf with unroll accumulators. body receives
// the accumulator to update and the offset of the next batch; the final
// partial batch is loaded zero-filled by the kind.
func accumulate[A any](n, lanes int, zero A, body func(acc A, off int) A, add func(A, A) A) A {
	accs := [unroll]A{zero, zero, zero, zero}
	i := 0
	for ; i+unroll*lanes <= n; i += unroll * lanes {
		for u := range unroll {
			accs[u] = body(accs[u], i+u*lanes)
		}
	}
	for u := 0; i < n; i, u = i+lanes, u+1 {
		accs[u%unroll] = body(accs[u%unroll], i)
	}
	return add(add(accs[0], accs[1]), add(accs[2], accs[3]))
}

// Dot returns sum(a[i] * b[i]) without conjugation. It panics if the lengths
// differ.
func Dot[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a, b []E) E {
	return dot(k, t, a, b, k.SimdMulAdd)
}

// ConjDot returns sum(conj(a[i]) * b[i]), the inner product of complex
// vectors. On real kinds it equals Dot.
func ConjDot[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a, b []E) E {
	return dot(k, t, a, b, k.SimdConjMulAdd)
}

func dot[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a, b []E, fma func(x, y, acc entity.Batch[U]) entity.Batch[U]) E {
	checkLen(len(a), len(b))
	lanes := k.Lanes(t)
	zero := k.SimdSplat(t, k.Zero())
	leaf := func(lo, hi int) E {
		x, y := a[lo:hi], b[lo:hi]
		acc := accumulate(len(x), lanes, zero, func(acc entity.Batch[U], off int) entity.Batch[U] {
			return fma(k.SimdLoad(t, x[off:]), k.SimdLoad(t, y[off:]), acc)
		}, k.SimdAdd)
		return k.SimdReduceSum(acc)
	}
	return pairwise(len(a), unroll*lanes, leaf, k.Add)
}

// Sum returns the sum of a.
func Sum[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E) E {
	lanes := k.Lanes(t)
	zero := k.SimdSplat(t, k.Zero())
	leaf := func(lo, hi int) E {
		x := a[lo:hi]
		acc := accumulate(len(x), lanes, zero, func(acc entity.Batch[U], off int) entity.Batch[U] {
			return k.SimdAdd(acc, k.SimdLoad(t, x[off:]))
		}, k.SimdAdd)
		return k.SimdReduceSum(acc)
	}
	return pairwise(len(a), unroll*lanes, leaf, k.Add)
}

// unitReduce sums a real-valued per-scalar quantity over a.
func unitReduce[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E, f func(acc hwy.Vec[U], b entity.Batch[U]) hwy.Vec[U]) U {
	lanes := k.Lanes(t)
	zero := hwy.Zero[U](t)
	leaf := func(lo, hi int) U {
		x := a[lo:hi]
		acc := accumulate(len(x), lanes, zero, func(acc hwy.Vec[U], off int) hwy.Vec[U] {
			return f(acc, k.SimdLoad(t, x[off:]))
		}, hwy.Add[U])
		return hwy.ReduceSum(acc)
	}
	return pairwise(len(a), unroll*lanes, leaf, func(x, y U) U { return x + y })
}

// NormL1 returns sum(|re| + |im|) over a, the sum of absolute values for
// real kinds.
func NormL1[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E) U {
	return unitReduce(k, t, a, func(acc hwy.Vec[U], b entity.Batch[U]) hwy.Vec[U] {
		return hwy.Add(acc, k.SimdAbs1(b))
	})
}

// SquaredNormL2 returns sum(|a[i]|^2).
func SquaredNormL2[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E) U {
	return unitReduce(k, t, a, func(acc hwy.Vec[U], b entity.Batch[U]) hwy.Vec[U] {
		return k.SimdAbs2Add(b, acc)
	})
}

// NormL2 returns the Euclidean norm of a. It does not rescale, so inputs
// whose squares overflow U return +Inf.
func NormL2[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E) U {
	return hwy.SqrtScalar(SquaredNormL2(k, t, a))
}

// NormMax returns max |a[i]|, or 0 for an empty slice. A NaN anywhere in a
// makes the result NaN.
func NormMax[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, a []E) U {
	lanes := k.Lanes(t)
	acc := hwy.Zero[U](t)
	for i := 0; i < len(a); i += lanes {
		acc = hwy.Max(acc, k.SimdAbs(k.SimdLoad(t, a[i:])))
	}
	return hwy.ReduceMax(acc)
}
