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

package hwy

import (
	"math"
	"unsafe"
)

// The helpers below are the per-lane definitions of the vector operations.
// Scalar code that must agree bit-for-bit with a vector kernel (tail loops,
// reference implementations) calls them directly.

// MulAddScalar returns a*b + c with a single rounding, like a hardware FMA
// of the lane width.
func MulAddScalar[T Floats](a, b, c T) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(fma32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// fma32 is the correctly rounded float32 fused multiply-add. The product of
// two float32 values is exact in float64, so only the sum rounds there; the
// second rounding to float32 is wrong only when that sum lands exactly on a
// float32 midpoint while the exact result does not.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	f := float32(s)
	if float64(f) == s || math.IsInf(s, 0) || math.IsNaN(s) {
		return f
	}

	// TwoSum: s + e == p + c exactly.
	bv := s - p
	av := s - bv
	e := (p - av) + (float64(c) - bv)
	if e == 0 {
		return f
	}

	g := math.Nextafter32(f, float32(math.Inf(1)))
	if float64(f) > s {
		g = math.Nextafter32(f, float32(math.Inf(-1)))
	}
	if mid := (float64(f) + float64(g)) / 2; s != mid {
		return f
	}
	return float32(math.Nextafter(s, math.Copysign(math.Inf(1), e)))
}

// SqrtScalar returns the square root of x, correctly rounded for both widths.
func SqrtScalar[T Floats](x T) T {
	return T(math.Sqrt(float64(x)))
}

// HypotScalar returns sqrt(a*a + b*b) computed without spurious overflow.
func HypotScalar[T Floats](a, b T) T {
	return T(math.Hypot(float64(a), float64(b)))
}

// AbsScalar clears the sign bit of x.
func AbsScalar[T Floats](x T) T {
	return T(math.Abs(float64(x)))
}
