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

import "github.com/ajroetker/go-entity/hwy"

// realArith is the arithmetic of arity-1 kinds. Slot 1 is never read or
// written.
type realArith[U Unit] struct{}

func (realArith[U]) arity() int       { return ArityReal }
func (realArith[U]) storage() Storage { return Contiguous }

func (realArith[U]) add(a, b Group[U]) Group[U] { return Group[U]{a[0] + b[0]} }
func (realArith[U]) sub(a, b Group[U]) Group[U] { return Group[U]{a[0] - b[0]} }
func (realArith[U]) mul(a, b Group[U]) Group[U] { return Group[U]{U(a[0] * b[0])} }
func (realArith[U]) div(a, b Group[U]) Group[U] { return Group[U]{a[0] / b[0]} }
func (realArith[U]) neg(a Group[U]) Group[U]    { return Group[U]{-a[0]} }
func (realArith[U]) conj(a Group[U]) Group[U]   { return a }

func (r realArith[U]) conjMul(a, b Group[U]) Group[U] { return r.mul(a, b) }

func (realArith[U]) mulAdd(a, b, c Group[U]) Group[U] {
	return Group[U]{hwy.MulAddScalar(a[0], b[0], c[0])}
}

func (r realArith[U]) conjMulAdd(a, b, c Group[U]) Group[U] { return r.mulAdd(a, b, c) }

func (realArith[U]) inv(a Group[U]) Group[U]  { return Group[U]{1 / a[0]} }
func (realArith[U]) sqrt(a Group[U]) Group[U] { return Group[U]{hwy.SqrtScalar(a[0])} }

func (realArith[U]) scaleReal(a Group[U], s U) Group[U] { return Group[U]{U(a[0] * s)} }

func (realArith[U]) abs(a Group[U]) U      { return hwy.AbsScalar(a[0]) }
func (realArith[U]) abs1(a Group[U]) U     { return hwy.AbsScalar(a[0]) }
func (realArith[U]) abs2(a Group[U]) U     { return U(a[0] * a[0]) }
func (realArith[U]) score(a Group[U]) U    { return hwy.AbsScalar(a[0]) }
func (realArith[U]) isNaN(a Group[U]) bool { return isNaN(a[0]) }

func (realArith[U]) isFinite(a Group[U]) bool { return isFinite(a[0]) }

func (realArith[U]) load(t *hwy.Target, units []U) Batch[U] {
	return Batch[U]{hwy.Load(t, units)}
}

func (realArith[U]) store(b Batch[U], units []U) {
	hwy.Store(b[0], units)
}

func (realArith[U]) vadd(a, b Batch[U]) Batch[U] { return Batch[U]{hwy.Add(a[0], b[0])} }
func (realArith[U]) vsub(a, b Batch[U]) Batch[U] { return Batch[U]{hwy.Sub(a[0], b[0])} }
func (realArith[U]) vmul(a, b Batch[U]) Batch[U] { return Batch[U]{hwy.Mul(a[0], b[0])} }
func (realArith[U]) vdiv(a, b Batch[U]) Batch[U] { return Batch[U]{hwy.Div(a[0], b[0])} }
func (realArith[U]) vneg(a Batch[U]) Batch[U]    { return Batch[U]{hwy.Neg(a[0])} }
func (realArith[U]) vconj(a Batch[U]) Batch[U]   { return a }

func (r realArith[U]) vconjMul(a, b Batch[U]) Batch[U] { return r.vmul(a, b) }

func (realArith[U]) vmulAdd(a, b, c Batch[U]) Batch[U] {
	return Batch[U]{hwy.MulAdd(a[0], b[0], c[0])}
}

func (r realArith[U]) vconjMulAdd(a, b, c Batch[U]) Batch[U] { return r.vmulAdd(a, b, c) }

func (realArith[U]) vscaleReal(a Batch[U], s hwy.Vec[U]) Batch[U] {
	return Batch[U]{hwy.Mul(a[0], s)}
}

func (realArith[U]) vabs(a Batch[U]) hwy.Vec[U]   { return hwy.Abs(a[0]) }
func (realArith[U]) vabs1(a Batch[U]) hwy.Vec[U]  { return hwy.Abs(a[0]) }
func (realArith[U]) vabs2(a Batch[U]) hwy.Vec[U]  { return hwy.Mul(a[0], a[0]) }
func (realArith[U]) vscore(a Batch[U]) hwy.Vec[U] { return hwy.Abs(a[0]) }

func (realArith[U]) vequal(a, b Batch[U]) hwy.Mask[U] { return hwy.Equal(a[0], b[0]) }
