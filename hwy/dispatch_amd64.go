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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// probe returns the levels this CPU supports, widest first, and whether it
// has FMA3. SSE2 is part of the amd64 baseline.
func probe() ([]DispatchLevel, bool) {
	levels := make([]DispatchLevel, 0, 4)
	if unstableTargets && cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ {
		levels = append(levels, DispatchAVX512)
	}
	// AVX2 kernels assume FMA3; Haswell and later have both.
	if cpu.X86.HasAVX2 && cpu.X86.HasFMA {
		levels = append(levels, DispatchAVX2)
	}
	levels = append(levels, DispatchSSE2, DispatchScalar)
	return levels, cpu.X86.HasFMA
}

// sveVectorBytes is never consulted on amd64.
func sveVectorBytes() int {
	return 16
}
