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

// Package vec provides vector kernels written once against the entity
// capability and instantiated for every scalar kind: dot products, sums,
// norms and in-place updates.
//
// Every kernel takes the kind and the target explicitly:
//
//	t := hwy.Default()
//	d := vec.Dot[complex128, float64](entity.Complex128{}, t, x, y)
//
// The non-generic wrappers in zz_vec_gen.go (DotComplex128, NormL2Float32,
// ...) bind the kind and the default target.
//
// Reductions keep four independent accumulators and split long inputs in
// half recursively, which bounds rounding error growth to O(log n) blocks.
package vec

//go:generate go run ../../cmd/entitygen -package vec -output zz_vec_gen.go
