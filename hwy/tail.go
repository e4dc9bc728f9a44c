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

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	lanes := hwy.MaxLanes[float32](t)
//	remaining := len(data) % lanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](t, remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](t *Target, count int) Mask[T] {
	n := MaxLanes[T](t)
	count = min(max(count, 0), n)
	return Mask[T]{bits: laneBits(count), n: n}
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
func ProcessWithTail[T Lanes](t *Target, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T](t)

	fullVectors := size / lanes
	for i := range fullVectors {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullVectors*lanes, remaining)
	}
}

// SplitTail splits s into a head whose length is a multiple of the lane
// count and the remaining tail (shorter than one vector).
func SplitTail[T Lanes](t *Target, s []T) (head, tail []T) {
	lanes := MaxLanes[T](t)
	cut := len(s) - len(s)%lanes
	return s[:cut], s[cut:]
}

// AlignedSize rounds up size to the next multiple of vector width.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize[T Lanes](t *Target, size int) int {
	lanes := MaxLanes[T](t)
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of vector width.
func IsAligned[T Lanes](t *Target, size int) bool {
	return size%MaxLanes[T](t) == 0
}
