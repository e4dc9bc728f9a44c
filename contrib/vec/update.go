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
	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

// Axpy computes y[i] = alpha*x[i] + y[i] with one fused multiply-add per
// unit. It panics if the lengths differ.
func Axpy[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, alpha E, x, y []E) {
	checkLen(len(x), len(y))
	lanes := k.Lanes(t)
	va := k.SimdSplat(t, alpha)
	for i := 0; i < len(x); i += lanes {
		k.SimdStore(k.SimdMulAdd(va, k.SimdLoad(t, x[i:]), k.SimdLoad(t, y[i:])), y[i:])
	}
}

// Scale computes x[i] = alpha * x[i].
func Scale[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, alpha E, x []E) {
	lanes := k.Lanes(t)
	va := k.SimdSplat(t, alpha)
	for i := 0; i < len(x); i += lanes {
		k.SimdStore(k.SimdMul(va, k.SimdLoad(t, x[i:])), x[i:])
	}
}

// ScaleReal multiplies every element of x by the real factor s. Scaling by a
// real touches each unit independently, so it runs over the unit view of x.
func ScaleReal[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, s U, x []E) {
	units := entity.Units[E, U](k, x)
	vs := hwy.Set(t, s)
	hwy.ProcessWithTail[U](t, len(units),
		func(off int) {
			hwy.Store(hwy.Mul(hwy.Load(t, units[off:]), vs), units[off:])
		},
		func(off, count int) {
			mask := hwy.TailMask[U](t, count)
			v := hwy.MaskLoad(mask, units[off:])
			hwy.MaskStore(mask, hwy.Mul(v, vs), units[off:])
		},
	)
}

// Conj conjugates x in place. On real kinds it does nothing.
func Conj[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, x []E) {
	if k.IsReal() {
		return
	}
	lanes := k.Lanes(t)
	for i := 0; i < len(x); i += lanes {
		k.SimdStore(k.SimdConj(k.SimdLoad(t, x[i:])), x[i:])
	}
}

// ArgMaxScore returns the index of the element with the largest Score and
// that score, or (-1, 0) for an empty slice. Ties resolve to the lowest
// index. NaN scores are skipped.
func ArgMaxScore[E any, U entity.Unit](k entity.Entity[E, U], t *hwy.Target, x []E) (int, U) {
	best, bestScore := -1, U(0)
	lanes := k.Lanes(t)
	for i := 0; i < len(x); i += lanes {
		s := k.SimdScore(k.SimdLoad(t, x[i:]))
		if best >= 0 && !hwy.Greater(s, hwy.Set(t, bestScore)).AnyTrue() {
			continue
		}
		for j := range min(lanes, len(x)-i) {
			if v := s.Lane(j); v == v && (best < 0 || v > bestScore) {
				best, bestScore = i+j, v
			}
		}
	}
	return best, bestScore
}
