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

// Package matmul provides matrix products written once against the entity
// capability, for real and complex kinds alike.
//
// Example usage:
//
//	// C = A * B where A is MxK, B is KxN, C is MxN, all row-major
//	a := make([]complex128, M*K)
//	b := make([]complex128, K*N)
//	c := make([]complex128, M*N)
//
//	matmul.MatMul[complex128, float64](entity.Complex128{}, hwy.Default(), a, b, c, M, N, K)
//
// ParallelMatMul splits the rows of C across a workerpool.Pool; each worker
// owns a disjoint strip of C.
package matmul
