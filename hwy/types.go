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

// Package hwy provides portable SIMD operations with a CPU target selected
// once per process.
//
// It follows the Highway C++ library's API: kernels are written once against
// vectors whose lane count is derived from an explicit, immutable [Target]
// rather than hidden global state. The operations themselves are portable Go;
// the Target sizes the vectors to the detected register width:
//
//	t := hwy.Default()
//
//	a := hwy.Load(t, data1)
//	b := hwy.Load(t, data2)
//	hwy.Store(hwy.Add(a, b), output)
//
// Vectors hold their lanes inline, so none of the operations in this package
// allocate.
package hwy

import "fmt"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Bits is a constraint for the integer types that share a width with a
// floating-point lane and can hold its bit pattern.
type Bits interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Bits
}

// maxLanes is the largest lane count any target produces: a 512-bit
// register of 32-bit lanes.
const maxLanes = 16

// Vec is a portable vector handle. Its lanes are stored inline; the number of
// active lanes is fixed by the Target the vector was created with.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data [maxLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns lane i, or the zero value when i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse, MaskLoad, and MaskStore to perform
// conditional operations.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or TailMask instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits uint32
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for b := m.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// And returns the lanes active in both masks.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	n := sameLanes(m.n, o.n)
	return Mask[T]{bits: m.bits & o.bits & laneBits(n), n: n}
}

// Or returns the lanes active in either mask.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	n := sameLanes(m.n, o.n)
	return Mask[T]{bits: (m.bits | o.bits) & laneBits(n), n: n}
}

// Not inverts every lane of the mask.
func (m Mask[T]) Not() Mask[T] {
	return Mask[T]{bits: ^m.bits & laneBits(m.n), n: m.n}
}

func sameLanes(a, b int) int {
	if a != b {
		panic(fmt.Sprintf("hwy: lane count mismatch: %d != %d", a, b))
	}
	return a
}

func laneBits(n int) uint32 {
	if n >= 32 {
		return ^uint32(0)
	}
	return uint32(1)<<uint(n) - 1
}
