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

// Package coe reinterprets typed memory without copying.
//
// Every reinterpretation between two element types goes through a [Proof],
// which checks size and alignment once when it is constructed. Callers build
// their proofs as package-level variables, so an incompatible pair stops the
// program during initialization instead of corrupting memory later:
//
//	var complexAsUnits = coe.Prove[complex128, float64]()
//
//	units := complexAsUnits.Slice(values) // len(units) == 2*len(values)
//
// Views share memory with their source. Empty inputs produce empty views.
package coe

import (
	"fmt"
	"unsafe"
)

// Pod is the set of plain-old-data element types: every bit pattern is a
// valid value and the type contains no pointers.
type Pod interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Layout is the size and alignment of a type, in bytes.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	return fmt.Sprintf("size=%d align=%d", l.Size, l.Align)
}

// LayoutOf returns the layout of T.
func LayoutOf[T Pod]() Layout {
	var v T
	return Layout{Size: unsafe.Sizeof(v), Align: unsafe.Alignof(v)}
}

// Proof certifies that a run of From values can be viewed as a run of To
// values. The zero Proof is not valid; use Prove.
type Proof[From, To Pod] struct {
	from, to Layout
	// Exactly one of grow and shrink is greater than one unless the sizes
	// match: a From holds shrink To values, or grow From values make one To.
	grow, shrink int
}

// Prove checks that From and To are layout compatible and returns the proof.
//
// The pair is compatible when one size divides the other and To needs no
// stricter alignment than From. Prove panics otherwise.
func Prove[From, To Pod]() Proof[From, To] {
	from, to := LayoutOf[From](), LayoutOf[To]()
	p := Proof[From, To]{from: from, to: to, grow: 1, shrink: 1}
	switch {
	case from.Size%to.Size == 0:
		p.shrink = int(from.Size / to.Size)
	case to.Size%from.Size == 0:
		p.grow = int(to.Size / from.Size)
	default:
		panic(fmt.Sprintf("coe: %T (%v) and %T (%v) have incompatible sizes", *new(From), from, *new(To), to))
	}
	if to.Align > from.Align {
		panic(fmt.Sprintf("coe: %T (%v) is not aligned enough for %T (%v)", *new(From), from, *new(To), to))
	}
	return p
}

// Ratio reports how many To values one From value spans (num/den): 2/1 for
// complex128 -> float64, 1/2 for float64 -> complex128.
func (p Proof[From, To]) Ratio() (num, den int) {
	return p.shrink, p.grow
}

// Slice views s as a slice of To sharing the same memory.
//
// When To is larger than From, len(s) must be a multiple of the ratio;
// Slice panics otherwise.
func (p Proof[From, To]) Slice(s []From) []To {
	if p.grow == 0 {
		panic("coe: use of zero Proof")
	}
	if len(s)%p.grow != 0 {
		panic(fmt.Sprintf("coe: length %d is not a multiple of %d", len(s), p.grow))
	}
	n := len(s) * p.shrink / p.grow
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// Value reinterprets a single From value as a To value. The sizes must match.
func (p Proof[From, To]) Value(v From) To {
	if p.from.Size != p.to.Size || p.grow == 0 {
		panic(fmt.Sprintf("coe: Value needs equal sizes, have %v and %v", p.from, p.to))
	}
	return *(*To)(unsafe.Pointer(&v))
}

// Transmute reinterprets the bits of v as a To. It panics if the sizes differ.
func Transmute[From, To Pod](v From) To {
	if unsafe.Sizeof(v) != unsafe.Sizeof(*new(To)) {
		panic(fmt.Sprintf("coe: cannot transmute %T to %T: sizes differ", v, *new(To)))
	}
	return *(*To)(unsafe.Pointer(&v))
}

// AsBytes views s as its raw bytes in native byte order.
func AsBytes[T Pod](s []T) []byte {
	var v T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(v)))
}

// FromBytes views b as a slice of T. The length of b must be a multiple of
// the size of T and its address must satisfy T's alignment; FromBytes panics
// otherwise.
func FromBytes[T Pod](b []byte) []T {
	l := LayoutOf[T]()
	if uintptr(len(b))%l.Size != 0 {
		panic(fmt.Sprintf("coe: %d bytes is not a whole number of %T", len(b), *new(T)))
	}
	ptr := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(ptr)%l.Align != 0 {
		panic(fmt.Sprintf("coe: buffer at %p is not %d-byte aligned", ptr, l.Align))
	}
	return unsafe.Slice((*T)(ptr), uintptr(len(b))/l.Size)
}

// Float is the set of unit types BitsOf and FromBits accept.
type Float interface {
	~float32 | ~float64
}

// BitsOf returns the IEEE-754 bit pattern of f, zero-extended to 64 bits.
func BitsOf[F Float](f F) uint64 {
	if unsafe.Sizeof(f) == 4 {
		return uint64(*(*uint32)(unsafe.Pointer(&f)))
	}
	return *(*uint64)(unsafe.Pointer(&f))
}

// FromBits is the inverse of BitsOf. For 32-bit F only the low 32 bits of b
// are used.
func FromBits[F Float](b uint64) F {
	var f F
	if unsafe.Sizeof(f) == 4 {
		*(*uint32)(unsafe.Pointer(&f)) = uint32(b)
		return f
	}
	*(*uint64)(unsafe.Pointer(&f)) = b
	return f
}
