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

// LoadInterleaved2 loads interleaved pairs and deinterleaves them into two
// vectors (Array-of-Structures to Structure-of-Arrays).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// This is the layout of Go's complex64 and complex128 slices viewed as their
// float components. Pairs missing from a short src load as zero.
func LoadInterleaved2[T Lanes](t *Target, src []T) (Vec[T], Vec[T]) {
	n := MaxLanes[T](t)
	a := Vec[T]{n: n}
	b := Vec[T]{n: n}
	pairs := min(n, len(src)/2)
	for i := range pairs {
		a.data[i] = src[2*i]
		b.data[i] = src[2*i+1]
	}
	return a, b
}

// StoreInterleaved2 interleaves two vectors into dst, the inverse of
// LoadInterleaved2. Only whole pairs that fit in dst are written.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	pairs := min(sameLanes(a.n, b.n), len(dst)/2)
	for i := range pairs {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}

// MaskLoad loads data from src only for lanes where the mask is true; the
// other lanes are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	v := Vec[T]{n: mask.n}
	for i := range min(mask.n, len(src)) {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore stores vector lanes to dst only where the mask is true.
// dst keeps its existing values in the other lanes.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(sameLanes(mask.n, v.n), len(dst)) {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}
