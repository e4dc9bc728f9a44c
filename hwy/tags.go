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

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag.
	Name() string
}

var _ Tag = (*Target)(nil)

// FixedTag128 forces 128-bit SIMD operations (SSE, NEON).
// Use this when you need consistent behavior across platforms.
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128) Name() string {
	return "128bit"
}

// FixedTag256 forces 256-bit SIMD operations (AVX2).
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256) Name() string {
	return "256bit"
}

// FixedTag512 forces 512-bit SIMD operations (AVX-512, SVE).
type FixedTag512 struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512) Name() string {
	return "512bit"
}

// Fixed returns a Target with the register width of tag and the portable
// (scalar) instruction level. The lane arithmetic is identical at every width,
// which makes Fixed targets suitable for checking width-independence of a
// kernel on any machine.
func Fixed(tag Tag) *Target {
	w := min(max(tag.Width(), 16), maxLanes*4)
	return &Target{level: DispatchScalar, width: w}
}

// AllWidths returns one fixed Target per supported register width.
func AllWidths() []*Target {
	return []*Target{Fixed(FixedTag128{}), Fixed(FixedTag256{}), Fixed(FixedTag512{})}
}
