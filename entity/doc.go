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

// Package entity describes how the scalars of a dense linear algebra library
// decompose into homogeneous real units, and offers the scalar and batched
// (SIMD) arithmetic generic kernels are written against.
//
// A scalar kind is a zero-size value implementing [Entity]. Real kinds have
// arity 1; complex kinds have arity 2 with slot 0 holding the real part and
// slot 1 the imaginary part:
//
//	k := entity.Complex128{}
//	g := k.Decompose(3 + 4i) // Group{3, 4}
//	z := k.Recompose(g)      // 3+4i
//
// Batched code works on units. A [Batch] carries one hwy.Vec per slot, and
// the lane count comes from an explicit *hwy.Target:
//
//	t := hwy.Default()
//	a := k.SimdLoad(t, xs)
//	b := k.SimdLoad(t, ys)
//	k.SimdStore(k.SimdMul(a, b), out)
//
// Scalar and batched operations round every intermediate identically, so a
// kernel's vector body and scalar tail agree bit-for-bit.
//
// Native storage is contiguous for real kinds and interleaved (re, im, re,
// im, ...) for complex kinds. Split storage, one slice per slot, is available
// through [Deinterleave], [Interleave], [SplitView] and the [Split] container.
package entity
