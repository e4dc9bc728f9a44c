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

package entity

import (
	"math/cmplx"

	"github.com/ajroetker/go-entity/hwy"
)

// complexArith is the arithmetic of arity-2 kinds: slot 0 is the real part,
// slot 1 the imaginary part.
//
// Every product is converted to U before it is combined, which forbids the
// compiler from fusing it into the following add. The batched forms are built
// from the same hwy operations in the same order, so scalar and batched
// results are identical.
type complexArith[U Unit] struct{}

func (complexArith[U]) arity() int       { return ArityComplex }
func (complexArith[U]) storage() Storage { return Interleaved }

func (complexArith[U]) add(a, b Group[U]) Group[U] {
	return Group[U]{a[0] + b[0], a[1] + b[1]}
}

func (complexArith[U]) sub(a, b Group[U]) Group[U] {
	return Group[U]{a[0] - b[0], a[1] - b[1]}
}

func (complexArith[U]) mul(a, b Group[U]) Group[U] {
	return Group[U]{
		U(a[0]*b[0]) - U(a[1]*b[1]),
		U(a[0]*b[1]) + U(a[1]*b[0]),
	}
}

func (complexArith[U]) conjMul(a, b Group[U]) Group[U] {
	return Group[U]{
		U(a[0]*b[0]) + U(a[1]*b[1]),
		U(a[0]*b[1]) - U(a[1]*b[0]),
	}
}

func (c complexArith[U]) div(a, b Group[U]) Group[U] {
	d := c.abs2(b)
	return Group[U]{
		(U(a[0]*b[0]) + U(a[1]*b[1])) / d,
		(U(a[1]*b[0]) - U(a[0]*b[1])) / d,
	}
}

func (complexArith[U]) neg(a Group[U]) Group[U]  { return Group[U]{-a[0], -a[1]} }
func (complexArith[U]) conj(a Group[U]) Group[U] { return Group[U]{a[0], -a[1]} }

func (complexArith[U]) mulAdd(a, b, c Group[U]) Group[U] {
	return Group[U]{
		hwy.MulAddScalar(a[0], b[0], hwy.MulAddScalar(-a[1], b[1], c[0])),
		hwy.MulAddScalar(a[0], b[1], hwy.MulAddScalar(a[1], b[0], c[1])),
	}
}

func (complexArith[U]) conjMulAdd(a, b, c Group[U]) Group[U] {
	return Group[U]{
		hwy.MulAddScalar(a[0], b[0], hwy.MulAddScalar(a[1], b[1], c[0])),
		hwy.MulAddScalar(a[0], b[1], hwy.MulAddScalar(-a[1], b[0], c[1])),
	}
}

func (c complexArith[U]) inv(a Group[U]) Group[U] {
	d := c.abs2(a)
	return Group[U]{a[0] / d, -a[1] / d}
}

// sqrt returns the principal square root, computed in complex128.
func (complexArith[U]) sqrt(a Group[U]) Group[U] {
	z := cmplx.Sqrt(complex(float64(a[0]), float64(a[1])))
	return Group[U]{U(real(z)), U(imag(z))}
}

func (complexArith[U]) scaleReal(a Group[U], s U) Group[U] {
	return Group[U]{U(a[0] * s), U(a[1] * s)}
}

func (complexArith[U]) abs(a Group[U]) U {
	return hwy.HypotScalar(a[0], a[1])
}

func (complexArith[U]) abs1(a Group[U]) U {
	return hwy.AbsScalar(a[0]) + hwy.AbsScalar(a[1])
}

func (complexArith[U]) abs2(a Group[U]) U {
	return U(a[0]*a[0]) + U(a[1]*a[1])
}

func (c complexArith[U]) score(a Group[U]) U { return c.abs2(a) }

func (complexArith[U]) isNaN(a Group[U]) bool {
	return isNaN(a[0]) || isNaN(a[1])
}

func (complexArith[U]) isFinite(a Group[U]) bool {
	return isFinite(a[0]) && isFinite(a[1])
}

func (complexArith[U]) load(t *hwy.Target, units []U) Batch[U] {
	re, im := hwy.LoadInterleaved2(t, units)
	return Batch[U]{re, im}
}

func (complexArith[U]) store(b Batch[U], units []U) {
	hwy.StoreInterleaved2(b[0], b[1], units)
}

func (complexArith[U]) vadd(a, b Batch[U]) Batch[U] {
	return Batch[U]{hwy.Add(a[0], b[0]), hwy.Add(a[1], b[1])}
}

func (complexArith[U]) vsub(a, b Batch[U]) Batch[U] {
	return Batch[U]{hwy.Sub(a[0], b[0]), hwy.Sub(a[1], b[1])}
}

func (complexArith[U]) vmul(a, b Batch[U]) Batch[U] {
	return Batch[U]{
		hwy.Sub(hwy.Mul(a[0], b[0]), hwy.Mul(a[1], b[1])),
		hwy.Add(hwy.Mul(a[0], b[1]), hwy.Mul(a[1], b[0])),
	}
}

func (complexArith[U]) vconjMul(a, b Batch[U]) Batch[U] {
	return Batch[U]{
		hwy.Add(hwy.Mul(a[0], b[0]), hwy.Mul(a[1], b[1])),
		hwy.Sub(hwy.Mul(a[0], b[1]), hwy.Mul(a[1], b[0])),
	}
}

func (c complexArith[U]) vdiv(a, b Batch[U]) Batch[U] {
	d := c.vabs2(b)
	return Batch[U]{
		hwy.Div(hwy.Add(hwy.Mul(a[0], b[0]), hwy.Mul(a[1], b[1])), d),
		hwy.Div(hwy.Sub(hwy.Mul(a[1], b[0]), hwy.Mul(a[0], b[1])), d),
	}
}

func (complexArith[U]) vneg(a Batch[U]) Batch[U] {
	return Batch[U]{hwy.Neg(a[0]), hwy.Neg(a[1])}
}

func (complexArith[U]) vconj(a Batch[U]) Batch[U] {
	return Batch[U]{a[0], hwy.Neg(a[1])}
}

func (complexArith[U]) vmulAdd(a, b, c Batch[U]) Batch[U] {
	return Batch[U]{
		hwy.MulAdd(a[0], b[0], hwy.MulAdd(hwy.Neg(a[1]), b[1], c[0])),
		hwy.MulAdd(a[0], b[1], hwy.MulAdd(a[1], b[0], c[1])),
	}
}

func (complexArith[U]) vconjMulAdd(a, b, c Batch[U]) Batch[U] {
	return Batch[U]{
		hwy.MulAdd(a[0], b[0], hwy.MulAdd(a[1], b[1], c[0])),
		hwy.MulAdd(a[0], b[1], hwy.MulAdd(hwy.Neg(a[1]), b[0], c[1])),
	}
}

func (complexArith[U]) vscaleReal(a Batch[U], s hwy.Vec[U]) Batch[U] {
	return Batch[U]{hwy.Mul(a[0], s), hwy.Mul(a[1], s)}
}

func (complexArith[U]) vabs(a Batch[U]) hwy.Vec[U] {
	return hwy.Hypot(a[0], a[1])
}

func (complexArith[U]) vabs1(a Batch[U]) hwy.Vec[U] {
	return hwy.Add(hwy.Abs(a[0]), hwy.Abs(a[1]))
}

func (complexArith[U]) vabs2(a Batch[U]) hwy.Vec[U] {
	return hwy.Add(hwy.Mul(a[0], a[0]), hwy.Mul(a[1], a[1]))
}

func (c complexArith[U]) vscore(a Batch[U]) hwy.Vec[U] { return c.vabs2(a) }

func (complexArith[U]) vequal(a, b Batch[U]) hwy.Mask[U] {
	return hwy.Equal(a[0], b[0]).And(hwy.Equal(a[1], b[1]))
}
