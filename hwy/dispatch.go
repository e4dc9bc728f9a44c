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
	"sync"
	"unsafe"
)

// DispatchLevel represents the SIMD instruction set a Target uses.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	// Only selected when built with the hwy_unstable tag.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON

	// DispatchSVE indicates ARM SVE instructions (scalable vector).
	// Only selected when built with the hwy_unstable tag.
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// ParseDispatchLevel maps a level name (as returned by String) back to its
// DispatchLevel.
func ParseDispatchLevel(name string) (DispatchLevel, bool) {
	for d := DispatchScalar; d <= DispatchSVE; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return DispatchScalar, false
}

// defaultWidth is the register width in bytes of each level. SVE reports its
// width at detection time; 16 bytes is the architectural minimum.
func (d DispatchLevel) defaultWidth() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// Target is the SIMD capability selected for this process. It is immutable
// after construction and safe to share between goroutines without locking.
//
// A Target only fixes how many lanes the vectors built from it hold. Every
// operation in this package is a portable Go loop over those lanes; there is
// no native instruction path, so Level and HasFMA describe the CPU and do not
// change any result.
//
// Use Default to obtain the cached, detected target, or Fixed to force a
// register width (mostly for tests).
type Target struct {
	level DispatchLevel
	width int
	fma   bool
}

// Level returns the SIMD instruction set of the target.
func (t *Target) Level() DispatchLevel {
	return t.level
}

// Width returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func (t *Target) Width() int {
	return t.width
}

// Name returns a human-readable name for the target, e.g. "avx2", "neon".
func (t *Target) Name() string {
	return t.level.String()
}

// HasFMA reports whether the CPU has hardware fused multiply-add. MulAdd is
// fused either way.
func (t *Target) HasFMA() bool {
	return t.fma
}

// String implements fmt.Stringer.
func (t *Target) String() string {
	return t.Name()
}

// MaxLanes returns the number of lanes of type T in one register of t.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
func MaxLanes[T Lanes](t *Target) int {
	var dummy T
	return min(t.width/int(unsafe.Sizeof(dummy)), maxLanes)
}

// Detect probes the CPU and returns a new Target for the widest level that
// is both supported and allowed by the build configuration and environment.
//
// Detection touches CPU feature registers and the environment; call it once
// and share the result. Default does exactly that.
func Detect() *Target {
	levels, fma := probe()
	level := levels[0]
	if override, ok := envOverride(levels); ok {
		level = override
	}

	t := &Target{level: level, width: level.defaultWidth(), fma: fma && level != DispatchScalar}
	if level == DispatchSVE {
		t.width = min(sveVectorBytes(), maxLanes*4)
	}
	Logger().Debug("hwy: target selected",
		"target", t.Name(),
		"width", t.width,
		"fma", t.fma,
		"available", levels)
	return t
}

var defaultTarget = sync.OnceValue(Detect)

// Default returns the process-wide Target. Detection runs on the first call
// only; every later call returns the same pointer.
func Default() *Target {
	return defaultTarget()
}
