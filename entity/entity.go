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
	"fmt"
	"slices"
	"unsafe"

	"github.com/ajroetker/go-entity/hwy"
)

// Storage is the native memory layout of a slice of scalars.
type Storage int

const (
	// Contiguous stores one unit per scalar.
	Contiguous Storage = iota
	// Interleaved stores the units of each scalar next to each other.
	Interleaved
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case Contiguous:
		return "contiguous"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// Structure is the shape of a scalar kind E with unit U.
type Structure[E any, U Unit] interface {
	// Name is the Go name of the scalar type, e.g. "complex64".
	Name() string
	Arity() int
	IsReal() bool
	Storage() Storage
	UnitBits() int

	// Decompose and Recompose convert between a scalar and its units without
	// arithmetic: Recompose(Decompose(e)) has the bits of e.
	Decompose(e E) Group[U]
	Recompose(g Group[U]) E

	// AsUnits views src as len(src)*Arity() units in native storage order.
	AsUnits(src []E) []U
	// AsElems is the inverse view of AsUnits. It panics if len(units) is not
	// a multiple of Arity().
	AsElems(units []U) []E
}

// Field is the scalar arithmetic of a kind. Complex operations follow the
// textbook formulas with each product rounded on its own, exactly like the
// batched forms in Simd.
type Field[E any, U Unit] interface {
	Zero() E
	One() E
	NaN() E
	FromReal(x U) E
	FromF64(x float64) E
	Real(e E) U
	Imag(e E) U

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Div(a, b E) E
	Neg(e E) E
	Conj(e E) E
	// ConjMul returns conj(a) * b.
	ConjMul(a, b E) E
	// MulAdd returns a*b + c using fused multiply-adds on the units.
	MulAdd(a, b, c E) E
	// ConjMulAdd returns conj(a)*b + c using fused multiply-adds.
	ConjMulAdd(a, b, c E) E
	Inv(e E) E
	Sqrt(e E) E

	Abs(e E) U
	// Abs1 is |re| + |im|.
	Abs1(e E) U
	// Abs2 is the squared modulus.
	Abs2(e E) U
	// Score orders scalars by magnitude: Abs for real kinds, Abs2 for
	// complex kinds.
	Score(e E) U
	ScaleReal(e E, s U) E
	IsNaN(e E) bool
	IsFinite(e E) bool
}

// Simd is the batched arithmetic of a kind. Each batch holds Lanes(t)
// scalars.
//
// Loads read at most Lanes(t) scalars and zero-fill missing lanes; stores
// write at most len(dst) scalars. Ordering compares have no meaning for
// complex values: apply hwy.Less and friends to the unit vectors returned by
// SimdAbs, SimdScore or to slot 0 of a real batch.
type Simd[E any, U Unit] interface {
	Lanes(t *hwy.Target) int

	SimdSplat(t *hwy.Target, e E) Batch[U]
	SimdLoad(t *hwy.Target, src []E) Batch[U]
	SimdStore(b Batch[U], dst []E)
	// SimdLoadSplit and SimdStoreSplit use one unit slice per slot.
	SimdLoadSplit(t *hwy.Target, src Group[[]U]) Batch[U]
	SimdStoreSplit(b Batch[U], dst Group[[]U])
	// SimdLoadLast loads the last min(Lanes, len(src)) scalars of src into
	// the highest lanes and zero-fills the lanes below them, for loops that
	// walk a slice from its end. SimdStoreLast writes the highest lanes back
	// to the end of dst.
	SimdLoadLast(t *hwy.Target, src []E) Batch[U]
	SimdStoreLast(b Batch[U], dst []E)

	SimdAdd(a, b Batch[U]) Batch[U]
	SimdSub(a, b Batch[U]) Batch[U]
	SimdMul(a, b Batch[U]) Batch[U]
	SimdDiv(a, b Batch[U]) Batch[U]
	SimdNeg(a Batch[U]) Batch[U]
	SimdConj(a Batch[U]) Batch[U]
	SimdConjMul(a, b Batch[U]) Batch[U]
	SimdMulAdd(a, b, c Batch[U]) Batch[U]
	SimdConjMulAdd(a, b, c Batch[U]) Batch[U]
	SimdScaleReal(a Batch[U], s hwy.Vec[U]) Batch[U]

	SimdAbs(a Batch[U]) hwy.Vec[U]
	SimdAbs1(a Batch[U]) hwy.Vec[U]
	SimdAbs2(a Batch[U]) hwy.Vec[U]
	// SimdAbs2Add returns acc + Abs2(a).
	SimdAbs2Add(a Batch[U], acc hwy.Vec[U]) hwy.Vec[U]
	SimdScore(a Batch[U]) hwy.Vec[U]

	// SimdEqual reports the lanes where every slot compares equal.
	SimdEqual(a, b Batch[U]) hwy.Mask[U]
	SimdSelect(m hwy.Mask[U], a, b Batch[U]) Batch[U]

	// SimdReduceSum adds the lanes in lane order.
	SimdReduceSum(a Batch[U]) E
	// SimdReduceMaxScore and SimdReduceMinScore include every lane, zero-filled
	// tail lanes too.
	SimdReduceMaxScore(a Batch[U]) U
	SimdReduceMinScore(a Batch[U]) U
	SimdRotateLeft(a Batch[U], k int) Batch[U]
}

// Entity is everything a generic numerical kernel needs to know about a
// scalar kind.
type Entity[E any, U Unit] interface {
	Structure[E, U]
	Field[E, U]
	Simd[E, U]
}

// Descriptor summarizes a registered kind.
type Descriptor struct {
	Name     string
	Unit     string
	Arity    int
	UnitBits int
	Size     uintptr
	Storage  Storage
	// Kind is the zero-size Entity value, e.g. Complex128{}.
	Kind any
}

func describe[E any, U Unit](k Entity[E, U]) Descriptor {
	var e E
	var u U
	return Descriptor{
		Name:     k.Name(),
		Unit:     fmt.Sprintf("%T", u),
		Arity:    k.Arity(),
		UnitBits: k.UnitBits(),
		Size:     unsafe.Sizeof(e),
		Storage:  k.Storage(),
		Kind:     k,
	}
}

var registry = []Descriptor{
	describe[float32, float32](Float32{}),
	describe[float64, float64](Float64{}),
	describe[complex64, float32](Complex64{}),
	describe[complex128, float64](Complex128{}),
}

// Kinds returns the closed set of supported scalar kinds, reals first.
func Kinds() []Descriptor {
	return slices.Clone(registry)
}
