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

import "fmt"

// Split stores scalars in split form: one unit slice per slot, all of the
// same length. Real kinds use slot 0 only.
//
// Split values are views: copies and sub-slices share storage, the way Go
// slices do.
type Split[E any, U Unit] struct {
	k     Structure[E, U]
	parts Group[[]U]
	n     int
}

// MakeSplit allocates a zeroed Split of n scalars.
func MakeSplit[E any, U Unit](k Structure[E, U], n int) Split[E, U] {
	s := Split[E, U]{k: k, n: n}
	for slot := range k.Arity() {
		s.parts[slot] = make([]U, n)
	}
	return s
}

// SplitOf returns a Split holding a copy of src.
func SplitOf[E any, U Unit](k Structure[E, U], src []E) Split[E, U] {
	s := MakeSplit(k, len(src))
	s.CopyFrom(src)
	return s
}

// Len returns the number of scalars.
func (s Split[E, U]) Len() int {
	return s.n
}

// At returns scalar i.
func (s Split[E, U]) At(i int) E {
	var g Group[U]
	for slot := range s.k.Arity() {
		g[slot] = s.parts[slot][i]
	}
	return s.k.Recompose(g)
}

// Set stores e at index i.
func (s Split[E, U]) Set(i int, e E) {
	g := s.k.Decompose(e)
	for slot := range s.k.Arity() {
		s.parts[slot][i] = g[slot]
	}
}

// Units returns the unit slices, one per slot. Unused slots are nil.
func (s Split[E, U]) Units() Group[[]U] {
	return s.parts
}

// Slice returns the scalars [lo, hi) as a Split sharing storage with s.
func (s Split[E, U]) Slice(lo, hi int) Split[E, U] {
	if lo < 0 || hi < lo || hi > s.n {
		panic(fmt.Sprintf("entity: split slice bounds [%d:%d] out of range with length %d", lo, hi, s.n))
	}
	r := Split[E, U]{k: s.k, n: hi - lo}
	for slot := range s.k.Arity() {
		r.parts[slot] = s.parts[slot][lo:hi:hi]
	}
	return r
}

// CopyFrom overwrites the first len(src) scalars of s.
func (s Split[E, U]) CopyFrom(src []E) {
	Deinterleave(s.k, s.parts, src)
}

// CopyTo writes the first len(dst) scalars of s to dst.
func (s Split[E, U]) CopyTo(dst []E) {
	Interleave(s.k, dst, s.parts)
}
