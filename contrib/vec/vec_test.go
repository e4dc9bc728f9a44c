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

package vec

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-entity/entity"
	"github.com/ajroetker/go-entity/hwy"
)

var lengths = []int{0, 1, 3, 17, 100, 1000, 5000}

// tolerance returns the relative error bound for a reduction over units of
// the given width.
func tolerance(unitBits int) float64 {
	if unitBits == 32 {
		return 1e-5
	}
	return 1e-12
}

func approxEqual(got, want complex128, scale, tol float64) bool {
	return cmplx.Abs(got-want) <= tol*(scale+1)
}

func toC128[E any, U entity.Unit](k entity.Entity[E, U], e E) complex128 {
	g := k.Decompose(e)
	return complex(float64(g[0]), float64(g[1]))
}

func randomElems[E any, U entity.Unit](k entity.Entity[E, U], r *rand.Rand, n int) []E {
	units := make([]U, n*k.Arity())
	for i := range units {
		units[i] = U(2*r.Float64() - 1)
	}
	return entity.FromUnits[E, U](k, units)
}

func checkReductions[E any, U entity.Unit](t *testing.T, k entity.Entity[E, U]) {
	r := rand.New(rand.NewPCG(42, 1))
	tol := tolerance(k.UnitBits())
	for _, tg := range hwy.AllWidths() {
		for _, n := range lengths {
			a, b := randomElems(k, r, n), randomElems(k, r, n)

			var dot, conjDot, sum complex128
			var l1, l2, scale, maxAbs float64
			for i := range n {
				x, y := toC128(k, a[i]), toC128(k, b[i])
				dot += x * y
				conjDot += cmplx.Conj(x) * y
				sum += x
				l1 += math.Abs(real(x)) + math.Abs(imag(x))
				l2 += real(x)*real(x) + imag(x)*imag(x)
				scale += cmplx.Abs(x) * cmplx.Abs(y)
				maxAbs = max(maxAbs, float64(k.Abs(a[i])))
			}

			name := fmt.Sprintf("%s/%dbit/n=%d", k.Name(), tg.Width()*8, n)
			if got := toC128(k, Dot(k, tg, a, b)); !approxEqual(got, dot, scale, tol) {
				t.Errorf("%s: Dot = %v, want %v", name, got, dot)
			}
			if got := toC128(k, ConjDot(k, tg, a, b)); !approxEqual(got, conjDot, scale, tol) {
				t.Errorf("%s: ConjDot = %v, want %v", name, got, conjDot)
			}
			if got := toC128(k, Sum(k, tg, a)); !approxEqual(got, sum, l1, tol) {
				t.Errorf("%s: Sum = %v, want %v", name, got, sum)
			}
			if got := float64(NormL1(k, tg, a)); !approxEqual(complex(got, 0), complex(l1, 0), l1, tol) {
				t.Errorf("%s: NormL1 = %v, want %v", name, got, l1)
			}
			if got := float64(NormL2(k, tg, a)); !approxEqual(complex(got, 0), complex(math.Sqrt(l2), 0), math.Sqrt(l2), tol) {
				t.Errorf("%s: NormL2 = %v, want %v", name, got, math.Sqrt(l2))
			}
			if got := float64(NormMax(k, tg, a)); got != maxAbs {
				t.Errorf("%s: NormMax = %v, want %v", name, got, maxAbs)
			}
		}
	}
}

func TestReductions(t *testing.T) {
	t.Run("float32", func(t *testing.T) { checkReductions[float32, float32](t, entity.Float32{}) })
	t.Run("float64", func(t *testing.T) { checkReductions[float64, float64](t, entity.Float64{}) })
	t.Run("complex64", func(t *testing.T) { checkReductions[complex64, float32](t, entity.Complex64{}) })
	t.Run("complex128", func(t *testing.T) { checkReductions[complex128, float64](t, entity.Complex128{}) })
}

func TestDotScenario(t *testing.T) {
	k := entity.Complex128{}
	a := []complex128{complex(1, 2), complex(3, 4)}
	b := []complex128{complex(5, 6), complex(7, 8)}

	for _, tg := range hwy.AllWidths() {
		if got := Dot[complex128, float64](k, tg, a, b); got != complex(-18, 68) {
			t.Errorf("width %d: Dot = %v, want (-18+68i)", tg.Width(), got)
		}
		if got := ConjDot[complex128, float64](k, tg, a, b); got != complex(70, -8) {
			t.Errorf("width %d: ConjDot = %v, want (70-8i)", tg.Width(), got)
		}
	}
	if got := DotComplex128(a, b); got != complex(-18, 68) {
		t.Errorf("DotComplex128 = %v, want (-18+68i)", got)
	}
}

func checkUpdates[E any, U entity.Unit](t *testing.T, k entity.Entity[E, U]) {
	r := rand.New(rand.NewPCG(9, 9))
	for _, tg := range hwy.AllWidths() {
		for _, n := range []int{0, 1, 7, 65} {
			x, y := randomElems(k, r, n), randomElems(k, r, n)
			alpha := randomElems(k, r, 1)[0]

			want := make([]E, n)
			for i := range n {
				want[i] = k.MulAdd(alpha, x[i], y[i])
			}
			got := make([]E, n)
			copy(got, y)
			Axpy(k, tg, alpha, x, got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s n=%d: Axpy mismatch (-want +got):\n%s", k.Name(), n, diff)
			}

			for i := range n {
				want[i] = k.Mul(alpha, x[i])
			}
			got = append(got[:0], x...)
			Scale(k, tg, alpha, got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s n=%d: Scale mismatch (-want +got):\n%s", k.Name(), n, diff)
			}

			for i := range n {
				want[i] = k.Conj(k.ScaleReal(x[i], 2))
			}
			got = append(got[:0], x...)
			ScaleReal(k, tg, 2, got)
			Conj(k, tg, got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s n=%d: ScaleReal+Conj mismatch (-want +got):\n%s", k.Name(), n, diff)
			}
		}
	}
}

func TestUpdates(t *testing.T) {
	t.Run("float32", func(t *testing.T) { checkUpdates[float32, float32](t, entity.Float32{}) })
	t.Run("float64", func(t *testing.T) { checkUpdates[float64, float64](t, entity.Float64{}) })
	t.Run("complex64", func(t *testing.T) { checkUpdates[complex64, float32](t, entity.Complex64{}) })
	t.Run("complex128", func(t *testing.T) { checkUpdates[complex128, float64](t, entity.Complex128{}) })
}

func TestNorms(t *testing.T) {
	k := entity.Complex128{}
	tg := hwy.Fixed(hwy.FixedTag128{})
	x := []complex128{complex(3, 4), complex(0, -12), 1}

	if got := NormL2[complex128, float64](k, tg, []complex128{complex(3, 4)}); got != 5 {
		t.Errorf("NormL2(3+4i) = %v, want 5", got)
	}
	if got := NormL1[complex128, float64](k, tg, x); got != 20 {
		t.Errorf("NormL1 = %v, want 20", got)
	}
	if got := NormMax[complex128, float64](k, tg, x); got != 12 {
		t.Errorf("NormMax = %v, want 12", got)
	}
	if got := NormMaxFloat64([]float64{1, math.NaN(), -3}); !math.IsNaN(got) {
		t.Errorf("NormMax with NaN = %v, want NaN", got)
	}
	if got := NormMax[complex128, float64](k, tg, nil); got != 0 {
		t.Errorf("NormMax(empty) = %v, want 0", got)
	}
	if got := SumComplex64(nil); got != 0 {
		t.Errorf("Sum(empty) = %v, want 0", got)
	}
}

func TestArgMaxScore(t *testing.T) {
	k := entity.Complex64{}
	tg := hwy.Fixed(hwy.FixedTag128{})
	x := []complex64{1, complex(0, 2), complex(float32(math.NaN()), 0), complex(-2, 0), complex(1, 1), 0.5}

	i, s := ArgMaxScore[complex64, float32](k, tg, x)
	if i != 1 || s != 4 {
		t.Errorf("ArgMaxScore = (%d, %v), want (1, 4)", i, s)
	}
	if i, _ := ArgMaxScore[complex64, float32](k, tg, nil); i != -1 {
		t.Errorf("ArgMaxScore(empty) index = %d, want -1", i)
	}
}

func TestLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dot with different lengths should panic")
		}
	}()
	DotFloat64([]float64{1, 2}, []float64{1})
}

func BenchmarkDot(b *testing.B) {
	t := hwy.Default()
	for _, n := range []int{64, 4096} {
		x := make([]complex128, n)
		y := make([]complex128, n)
		for i := range x {
			x[i], y[i] = complex(float64(i), 1), complex(1, float64(i))
		}
		b.Run(fmt.Sprintf("complex128/%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = Dot[complex128, float64](entity.Complex128{}, t, x, y)
			}
		})
	}
}
