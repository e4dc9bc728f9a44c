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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// probe returns the levels this CPU supports, widest first.
// ARM64 (AArch64) always has NEON (ASIMD) and scalar FMA available: both are
// part of the ARMv8-A base architecture.
func probe() ([]DispatchLevel, bool) {
	levels := make([]DispatchLevel, 0, 3)
	if unstableTargets && cpu.ARM64.HasSVE {
		levels = append(levels, DispatchSVE)
	}
	if cpu.ARM64.HasASIMD {
		levels = append(levels, DispatchNEON)
	}
	levels = append(levels, DispatchScalar)
	return levels, true
}
