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

// Unit is the homogeneous real primitive every scalar decomposes into.
type Unit interface {
	hwy.Floats
}

// Arity of the supported kinds. A Group always has MaxArity slots; slots at
// or beyond a kind's arity are unused and stay zero.
const (
	ArityReal    = 1
	ArityComplex = 2
	MaxArity     = ArityComplex
)

// Group holds one item per unit of a scalar: the units themselves, slices of
// units, or vectors of units.
type Group[T any] [MaxArity]T

// Batch is a vectorized scalar: one vector per slot, advancing in lockstep.
type Batch[U Unit] = Group[hwy.Vec[U]]

// Of1 returns the group of a real scalar.
func Of1[T any](x T) Group[T] {
	return Group[T]{x}
}

// Of2 returns the group of a complex scalar.
func Of2[T any](re, im T) Group[T] {
	return Group[T]{re, im}
}

// First returns slot 0, the real part.
func (g Group[T]) First() T {
	return g[0]
}

// Map applies f to the first arity slots of g.
func Map[T, R any](arity int, g Group[T], f func(T) R) Group[R] {
	var r Group[R]
	for s := range arity {
		r[s] = f(g[s])
	}
	return r
}

// Zip combines the first arity slots of a and b slot by slot.
func Zip[A, B, R any](arity int, a Group[A], b Group[B], f func(A, B) R) Group[R] {
	var r Group[R]
	for s := range arity {
		r[s] = f(a[s], b[s])
	}
	return r
}

// Unzip splits each of the first arity slots of g in two.
func Unzip[T, A, B any](arity int, g Group[T], f func(T) (A, B)) (Group[A], Group[B]) {
	var a Group[A]
	var b Group[B]
	for s := range arity {
		a[s], b[s] = f(g[s])
	}
	return a, b
}
