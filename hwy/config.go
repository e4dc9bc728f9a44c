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

//go:build !hwy_minimal

package hwy

import (
	"os"
	"slices"
	"strconv"
)

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Detect selects the scalar target regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// envOverride applies HWY_NO_SIMD and HWY_TARGET. HWY_TARGET names a level
// ("sse2", "avx2", ...) and is honored only when the CPU supports it.
func envOverride(levels []DispatchLevel) (DispatchLevel, bool) {
	if NoSimdEnv() {
		return DispatchScalar, true
	}
	name := os.Getenv("HWY_TARGET")
	if name == "" {
		return DispatchScalar, false
	}
	level, ok := ParseDispatchLevel(name)
	if !ok || !slices.Contains(levels, level) {
		Logger().Warn("hwy: ignoring HWY_TARGET", "value", name, "available", levels)
		return DispatchScalar, false
	}
	return level, true
}
