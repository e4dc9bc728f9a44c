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

import (
	"unsafe"

	"github.com/ajroetker/go-entity/coe"
)

// Float32 is the real kind over float32.
type Float32 struct {
	kind[float32, float32, f32Codec, realArith[float32]]
}

// Float64 is the real kind over float64.
type Float64 struct {
	kind[float64, float64, f64Codec, realArith[float64]]
}

// Complex64 is the complex kind with float32 units, stored interleaved.
type Complex64 struct {
	kind[complex64, float32, c64Codec, complexArith[float32]]
}

// Complex128 is the complex kind with float64 units, stored interleaved.
type Complex128 struct {
	kind[complex128, float64, c128Codec, complexArith[float64]]
}

var (
	_ Entity[float32, float32]    = Float32{}
	_ Entity[float64, float64]    = Float64{}
	_ Entity[complex64, float32]  = Complex64{}
	_ Entity[complex128, float64] = Complex128{}
)

// A complex scalar must be exactly two units with the unit's alignment for
// the interleaved views below. Each index is zero when that holds and out of
// range (or overflows) otherwise, which stops compilation.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(complex64(0))-ArityComplex*unsafe.Sizeof(float32(0))]
	_ = [1]struct{}{}[unsafe.Sizeof(complex128(0))-ArityComplex*unsafe.Sizeof(float64(0))]
	_ = [1]struct{}{}[unsafe.Alignof(complex64(0))-unsafe.Alignof(float32(0))]
	_ = [1]struct{}{}[unsafe.Alignof(complex128(0))-unsafe.Alignof(float64(0))]
)

// Layout proofs for the slice views, checked when the package initializes.
var (
	c64AsUnits  = coe.Prove[complex64, float32]()
	c64AsElems  = coe.Prove[float32, complex64]()
	c128AsUnits = coe.Prove[complex128, float64]()
	c128AsElems = coe.Prove[float64, complex128]()
)

type f32Codec struct{}

func (f32Codec) name() string                       { return "float32" }
func (f32Codec) decompose(e float32) Group[float32] { return Group[float32]{e} }
func (f32Codec) recompose(g Group[float32]) float32 { return g[0] }
func (f32Codec) units(src []float32) []float32      { return src }
func (f32Codec) elems(units []float32) []float32    { return units }

type f64Codec struct{}

func (f64Codec) name() string                       { return "float64" }
func (f64Codec) decompose(e float64) Group[float64] { return Group[float64]{e} }
func (f64Codec) recompose(g Group[float64]) float64 { return g[0] }
func (f64Codec) units(src []float64) []float64      { return src }
func (f64Codec) elems(units []float64) []float64    { return units }

type c64Codec struct{}

func (c64Codec) name() string { return "complex64" }

func (c64Codec) decompose(e complex64) Group[float32] {
	return Group[float32]{real(e), imag(e)}
}

func (c64Codec) recompose(g Group[float32]) complex64 {
	return complex(g[0], g[1])
}

func (c64Codec) units(src []complex64) []float32 { return c64AsUnits.Slice(src) }
func (c64Codec) elems(units []float32) []complex64 {
	checkArity(len(units), ArityComplex)
	return c64AsElems.Slice(units)
}

type c128Codec struct{}

func (c128Codec) name() string { return "complex128" }

func (c128Codec) decompose(e complex128) Group[float64] {
	return Group[float64]{real(e), imag(e)}
}

func (c128Codec) recompose(g Group[float64]) complex128 {
	return complex(g[0], g[1])
}

func (c128Codec) units(src []complex128) []float64 { return c128AsUnits.Slice(src) }
func (c128Codec) elems(units []float64) []complex128 {
	checkArity(len(units), ArityComplex)
	return c128AsElems.Slice(units)
}
