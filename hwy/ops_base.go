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

// This file provides the portable implementations of the Highway vector
// operations. Every lane is computed with the same scalar expression that the
// *Scalar helpers in scalar.go use, so a vectorized kernel and its scalar
// tail loop round identically.
//
// Operations taking more than one vector or mask require them to come from
// the same Target and panic when their lane counts differ.

// Load creates a vector from the first MaxLanes elements of src.
// Lanes past the end of src are zero, which makes Load usable for the
// partial last vector of a slice.
func Load[T Lanes](t *Target, src []T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T](t)}
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's lanes to dst. At most len(dst) lanes are written.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](t *Target, value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T](t)}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](t *Target) Vec[T] {
	return Vec[T]{n: MaxLanes[T](t)}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes](t *Target) Vec[T] {
	v := Vec[T]{n: MaxLanes[T](t)}
	for i := range v.n {
		v.data[i] = T(i)
	}
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication. The product is always rounded to
// T; it is never fused with a following Add or Sub.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates all lanes. For floats only the sign bit changes, NaN included.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Abs computes absolute value.
func Abs[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = AbsScalar(v.data[i])
	}
	return r
}

// Min returns element-wise minimum. NaN in either lane yields NaN, and -0 is
// smaller than +0 (the semantics of the min builtin).
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns element-wise maximum, with the NaN rules of Min.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// MulAdd performs fused multiply-add: a*b + c.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(sameLanes(a.n, b.n), c.n)}
	for i := range r.n {
		r.data[i] = MulAddScalar(a.data[i], b.data[i], c.data[i])
	}
	return r
}

// Sqrt computes square root.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = SqrtScalar(v.data[i])
	}
	return r
}

// Hypot computes sqrt(a*a + b*b) without undue overflow or underflow.
func Hypot[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(a.n, b.n)}
	for i := range r.n {
		r.data[i] = HypotScalar(a.data[i], b.data[i])
	}
	return r
}

// ReduceSum sums all lanes in lane order.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes.
// Returns the zero value for an empty vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = min(m, v.data[i])
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
// Returns the zero value for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: sameLanes(a.n, b.n)}
	for i := range m.n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return Equal(a, b).Not()
}

// Less performs element-wise less-than comparison.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: sameLanes(a.n, b.n)}
	for i := range m.n {
		if a.data[i] < b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: sameLanes(a.n, b.n)}
	for i := range m.n {
		if a.data[i] <= b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// Greater performs element-wise greater-than comparison.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	return Less(b, a)
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return LessEqual(b, a)
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return NotEqual(v, v)
}

// IfThenElse performs conditional selection: a where mask is set, b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(sameLanes(mask.n, a.n), b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: sameLanes(mask.n, a.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// RotateLeft rotates lanes towards index 0 by k: lane i of the result holds
// lane (i+k) mod n of v.
func RotateLeft[T Lanes](v Vec[T], k int) Vec[T] {
	r := Vec[T]{n: v.n}
	if v.n == 0 {
		return r
	}
	k %= v.n
	if k < 0 {
		k += v.n
	}
	for i := range v.n {
		r.data[i] = v.data[(i+k)%v.n]
	}
	return r
}
