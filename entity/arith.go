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

package entity

import "github.com/ajroetker/go-entity/hwy"

// arith is the per-arity arithmetic on unit groups. Kinds share one arith
// per unit type; the codec supplies the conversion to the Go scalar.
type arith[U Unit] interface {
	arity() int
	storage() Storage

	add(a, b Group[U]) Group[U]
	sub(a, b Group[U]) Group[U]
	mul(a, b Group[U]) Group[U]
	div(a, b Group[U]) Group[U]
	neg(a Group[U]) Group[U]
	conj(a Group[U]) Group[U]
	conjMul(a, b Group[U]) Group[U]
	mulAdd(a, b, c Group[U]) Group[U]
	conjMulAdd(a, b, c Group[U]) Group[U]
	inv(a Group[U]) Group[U]
	sqrt(a Group[U]) Group[U]
	scaleReal(a Group[U], s U) Group[U]
	abs(a Group[U]) U
	abs1(a Group[U]) U
	abs2(a Group[U]) U
	score(a Group[U]) U
	isNaN(a Group[U]) bool
	isFinite(a Group[U]) bool

	load(t *hwy.Target, units []U) Batch[U]
	store(b Batch[U], units []U)
	vadd(a, b Batch[U]) Batch[U]
	vsub(a, b Batch[U]) Batch[U]
	vmul(a, b Batch[U]) Batch[U]
	vdiv(a, b Batch[U]) Batch[U]
	vneg(a Batch[U]) Batch[U]
	vconj(a Batch[U]) Batch[U]
	vconjMul(a, b Batch[U]) Batch[U]
	vmulAdd(a, b, c Batch[U]) Batch[U]
	vconjMulAdd(a, b, c Batch[U]) Batch[U]
	vscaleReal(a Batch[U], s hwy.Vec[U]) Batch[U]
	vabs(a Batch[U]) hwy.Vec[U]
	vabs1(a Batch[U]) hwy.Vec[U]
	vabs2(a Batch[U]) hwy.Vec[U]
	vscore(a Batch[U]) hwy.Vec[U]
	vequal(a, b Batch[U]) hwy.Mask[U]
}

func isNaN[U Unit](x U) bool {
	return x != x
}

func isFinite[U Unit](x U) bool {
	// Inf-Inf and NaN-NaN are both NaN.
	return !isNaN(x - x)
}
