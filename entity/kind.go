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
	"math"
	"unsafe"

	"github.com/ajroetker/go-entity/hwy"
)

// codec converts between a Go scalar and its units.
type codec[E any, U Unit] interface {
	name() string
	decompose(e E) Group[U]
	recompose(g Group[U]) E
	units(src []E) []U
	elems(units []U) []E
}

// kind implements Entity for the scalar E from a codec and the arithmetic of
// its arity. The exported kinds embed it.
type kind[E any, U Unit, C codec[E, U], A arith[U]] struct{}

func (kind[E, U, C, A]) Name() string {
	var c C
	return c.name()
}

func (kind[E, U, C, A]) Arity() int {
	var a A
	return a.arity()
}

func (k kind[E, U, C, A]) IsReal() bool {
	return k.Arity() == ArityReal
}

func (kind[E, U, C, A]) Storage() Storage {
	var a A
	return a.storage()
}

func (kind[E, U, C, A]) UnitBits() int {
	var u U
	return 8 * int(unsafe.Sizeof(u))
}

func (kind[E, U, C, A]) Decompose(e E) Group[U] {
	var c C
	return c.decompose(e)
}

func (kind[E, U, C, A]) Recompose(g Group[U]) E {
	var c C
	return c.recompose(g)
}

func (kind[E, U, C, A]) AsUnits(src []E) []U {
	var c C
	return c.units(src)
}

func (kind[E, U, C, A]) AsElems(units []U) []E {
	var c C
	return c.elems(units)
}

func (kind[E, U, C, A]) Zero() E {
	var c C
	return c.recompose(Group[U]{})
}

func (kind[E, U, C, A]) One() E {
	var c C
	return c.recompose(Group[U]{1})
}

func (kind[E, U, C, A]) NaN() E {
	var c C
	var a A
	nan := U(math.NaN())
	var g Group[U]
	for s := range a.arity() {
		g[s] = nan
	}
	return c.recompose(g)
}

func (kind[E, U, C, A]) FromReal(x U) E {
	var c C
	return c.recompose(Group[U]{x})
}

func (k kind[E, U, C, A]) FromF64(x float64) E {
	return k.FromReal(U(x))
}

func (kind[E, U, C, A]) Real(e E) U {
	var c C
	return c.decompose(e)[0]
}

func (kind[E, U, C, A]) Imag(e E) U {
	var c C
	return c.decompose(e)[1]
}

func (kind[E, U, C, A]) Add(x, y E) E {
	var c C
	var a A
	return c.recompose(a.add(c.decompose(x), c.decompose(y)))
}

func (kind[E, U, C, A]) Sub(x, y E) E {
	var c C
	var a A
	return c.recompose(a.sub(c.decompose(x), c.decompose(y)))
}

func (kind[E, U, C, A]) Mul(x, y E) E {
	var c C
	var a A
	return c.recompose(a.mul(c.decompose(x), c.decompose(y)))
}

func (kind[E, U, C, A]) Div(x, y E) E {
	var c C
	var a A
	return c.recompose(a.div(c.decompose(x), c.decompose(y)))
}

func (kind[E, U, C, A]) ConjMul(x, y E) E {
	var c C
	var a A
	return c.recompose(a.conjMul(c.decompose(x), c.decompose(y)))
}

func (kind[E, U, C, A]) Neg(e E) E {
	var c C
	var a A
	return c.recompose(a.neg(c.decompose(e)))
}

func (kind[E, U, C, A]) Conj(e E) E {
	var c C
	var a A
	return c.recompose(a.conj(c.decompose(e)))
}

func (kind[E, U, C, A]) Inv(e E) E {
	var c C
	var a A
	return c.recompose(a.inv(c.decompose(e)))
}

func (kind[E, U, C, A]) Sqrt(e E) E {
	var c C
	var a A
	return c.recompose(a.sqrt(c.decompose(e)))
}

func (kind[E, U, C, A]) MulAdd(x, y, z E) E {
	var c C
	var a A
	return c.recompose(a.mulAdd(c.decompose(x), c.decompose(y), c.decompose(z)))
}

func (kind[E, U, C, A]) ConjMulAdd(x, y, z E) E {
	var c C
	var a A
	return c.recompose(a.conjMulAdd(c.decompose(x), c.decompose(y), c.decompose(z)))
}

func (kind[E, U, C, A]) Abs(e E) U {
	var c C
	var a A
	return a.abs(c.decompose(e))
}

func (kind[E, U, C, A]) Abs1(e E) U {
	var c C
	var a A
	return a.abs1(c.decompose(e))
}

func (kind[E, U, C, A]) Abs2(e E) U {
	var c C
	var a A
	return a.abs2(c.decompose(e))
}

func (kind[E, U, C, A]) Score(e E) U {
	var c C
	var a A
	return a.score(c.decompose(e))
}

func (kind[E, U, C, A]) ScaleReal(e E, s U) E {
	var c C
	var a A
	return c.recompose(a.scaleReal(c.decompose(e), s))
}

func (kind[E, U, C, A]) IsNaN(e E) bool {
	var c C
	var a A
	return a.isNaN(c.decompose(e))
}

func (kind[E, U, C, A]) IsFinite(e E) bool {
	var c C
	var a A
	return a.isFinite(c.decompose(e))
}

func (kind[E, U, C, A]) Lanes(t *hwy.Target) int {
	return hwy.MaxLanes[U](t)
}

func (k kind[E, U, C, A]) SimdSplat(t *hwy.Target, e E) Batch[U] {
	return Map(k.Arity(), k.Decompose(e), func(u U) hwy.Vec[U] { return hwy.Set(t, u) })
}

func (kind[E, U, C, A]) SimdLoad(t *hwy.Target, src []E) Batch[U] {
	var c C
	var a A
	return a.load(t, c.units(src))
}

func (kind[E, U, C, A]) SimdStore(b Batch[U], dst []E) {
	var c C
	var a A
	a.store(b, c.units(dst))
}

func (k kind[E, U, C, A]) SimdLoadSplit(t *hwy.Target, src Group[[]U]) Batch[U] {
	return Map(k.Arity(), src, func(s []U) hwy.Vec[U] { return hwy.Load(t, s) })
}

func (k kind[E, U, C, A]) SimdStoreSplit(b Batch[U], dst Group[[]U]) {
	for s := range k.Arity() {
		hwy.Store(b[s], dst[s])
	}
}

func (k kind[E, U, C, A]) SimdLoadLast(t *hwy.Target, src []E) Batch[U] {
	n := min(k.Lanes(t), len(src))
	return k.SimdRotateLeft(k.SimdLoad(t, src[len(src)-n:]), n)
}

func (k kind[E, U, C, A]) SimdStoreLast(b Batch[U], dst []E) {
	lanes := b[0].NumLanes()
	n := min(lanes, len(dst))
	k.SimdStore(k.SimdRotateLeft(b, lanes-n), dst[len(dst)-n:])
}

func (kind[E, U, C, A]) SimdAdd(x, y Batch[U]) Batch[U] {
	var a A
	return a.vadd(x, y)
}

func (kind[E, U, C, A]) SimdSub(x, y Batch[U]) Batch[U] {
	var a A
	return a.vsub(x, y)
}

func (kind[E, U, C, A]) SimdMul(x, y Batch[U]) Batch[U] {
	var a A
	return a.vmul(x, y)
}

func (kind[E, U, C, A]) SimdDiv(x, y Batch[U]) Batch[U] {
	var a A
	return a.vdiv(x, y)
}

func (kind[E, U, C, A]) SimdNeg(x Batch[U]) Batch[U] {
	var a A
	return a.vneg(x)
}

func (kind[E, U, C, A]) SimdConj(x Batch[U]) Batch[U] {
	var a A
	return a.vconj(x)
}

func (kind[E, U, C, A]) SimdConjMul(x, y Batch[U]) Batch[U] {
	var a A
	return a.vconjMul(x, y)
}

func (kind[E, U, C, A]) SimdMulAdd(x, y, z Batch[U]) Batch[U] {
	var a A
	return a.vmulAdd(x, y, z)
}

func (kind[E, U, C, A]) SimdConjMulAdd(x, y, z Batch[U]) Batch[U] {
	var a A
	return a.vconjMulAdd(x, y, z)
}

func (kind[E, U, C, A]) SimdScaleReal(x Batch[U], s hwy.Vec[U]) Batch[U] {
	var a A
	return a.vscaleReal(x, s)
}

func (kind[E, U, C, A]) SimdAbs(x Batch[U]) hwy.Vec[U] {
	var a A
	return a.vabs(x)
}

func (kind[E, U, C, A]) SimdAbs1(x Batch[U]) hwy.Vec[U] {
	var a A
	return a.vabs1(x)
}

func (kind[E, U, C, A]) SimdAbs2(x Batch[U]) hwy.Vec[U] {
	var a A
	return a.vabs2(x)
}

func (kind[E, U, C, A]) SimdAbs2Add(x Batch[U], acc hwy.Vec[U]) hwy.Vec[U] {
	var a A
	return hwy.Add(acc, a.vabs2(x))
}

func (kind[E, U, C, A]) SimdScore(x Batch[U]) hwy.Vec[U] {
	var a A
	return a.vscore(x)
}

func (kind[E, U, C, A]) SimdEqual(x, y Batch[U]) hwy.Mask[U] {
	var a A
	return a.vequal(x, y)
}

func (k kind[E, U, C, A]) SimdSelect(m hwy.Mask[U], x, y Batch[U]) Batch[U] {
	return Zip(k.Arity(), x, y, func(p, q hwy.Vec[U]) hwy.Vec[U] { return hwy.IfThenElse(m, p, q) })
}

func (k kind[E, U, C, A]) SimdReduceSum(x Batch[U]) E {
	return k.Recompose(Map(k.Arity(), x, hwy.ReduceSum[U]))
}

func (kind[E, U, C, A]) SimdReduceMaxScore(x Batch[U]) U {
	var a A
	return hwy.ReduceMax(a.vscore(x))
}

func (kind[E, U, C, A]) SimdReduceMinScore(x Batch[U]) U {
	var a A
	return hwy.ReduceMin(a.vscore(x))
}

func (k kind[E, U, C, A]) SimdRotateLeft(x Batch[U], n int) Batch[U] {
	return Map(k.Arity(), x, func(v hwy.Vec[U]) hwy.Vec[U] { return hwy.RotateLeft(v, n) })
}
