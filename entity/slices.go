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

func checkArity(n, arity int) {
	if n%arity != 0 {
		panic(fmt.Sprintf("entity: %d units do not form whole scalars of arity %d", n, arity))
	}
}

// Units views src as its units in native storage order without copying. The
// result has len(src)*k.Arity() elements and aliases src.
func Units[E any, U Unit](k Structure[E, U], src []E) []U {
	return k.AsUnits(src)
}

// FromUnits is the inverse of Units. It panics if len(units) is not a
// multiple of the arity.
func FromUnits[E any, U Unit](k Structure[E, U], units []U) []E {
	checkArity(len(units), k.Arity())
	return k.AsElems(units)
}

// SplitView returns src as one unit slice per slot without copying. Only
// real kinds, where split and contiguous storage coincide, have such a view;
// for other kinds ok is false and Deinterleave must be used instead.
func SplitView[E any, U Unit](k Structure[E, U], src []E) (g Group[[]U], ok bool) {
	if k.Arity() != ArityReal {
		return g, false
	}
	return Of1(k.AsUnits(src)), true
}

// Deinterleave copies src into split storage: slot s of element i goes to
// dst[s][i]. Every used slot of dst must hold at least len(src) units.
func Deinterleave[E any, U Unit](k Structure[E, U], dst Group[[]U], src []E) {
	arity := k.Arity()
	checkSplitLen(dst, arity, len(src))
	units := k.AsUnits(src)
	if arity == ArityReal {
		copy(dst[0], units)
		return
	}
	for i := range src {
		for s := range arity {
			dst[s][i] = units[i*arity+s]
		}
	}
}

// Interleave copies split storage back into dst, the inverse of
// Deinterleave.
func Interleave[E any, U Unit](k Structure[E, U], dst []E, src Group[[]U]) {
	arity := k.Arity()
	checkSplitLen(src, arity, len(dst))
	units := k.AsUnits(dst)
	if arity == ArityReal {
		copy(units, src[0][:len(dst)])
		return
	}
	for i := range dst {
		for s := range arity {
			units[i*arity+s] = src[s][i]
		}
	}
}

func checkSplitLen[U Unit](g Group[[]U], arity, n int) {
	for s := range arity {
		if len(g[s]) < n {
			panic(fmt.Sprintf("entity: split slot %d has %d units, need %d", s, len(g[s]), n))
		}
	}
}
