package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-entity/coe"
)

// exactBits compares floating-point values by bit pattern, so NaN payloads
// and signed zeros must match.
var exactBits = cmp.Options{
	cmp.Comparer(func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }),
	cmp.Comparer(func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }),
	cmp.Comparer(func(a, b complex64) bool {
		return math.Float32bits(real(a)) == math.Float32bits(real(b)) &&
			math.Float32bits(imag(a)) == math.Float32bits(imag(b))
	}),
	cmp.Comparer(func(a, b complex128) bool {
		return math.Float64bits(real(a)) == math.Float64bits(real(b)) &&
			math.Float64bits(imag(a)) == math.Float64bits(imag(b))
	}),
}

// sameValue is exactBits except that any NaN equals any other NaN.
var sameValue = cmp.Options{
	cmp.Comparer(func(a, b float32) bool { return sameUnit(a, b) }),
	cmp.Comparer(func(a, b float64) bool { return sameUnit(a, b) }),
	cmp.Comparer(func(a, b complex64) bool { return sameUnit(real(a), real(b)) && sameUnit(imag(a), imag(b)) }),
	cmp.Comparer(func(a, b complex128) bool { return sameUnit(real(a), real(b)) && sameUnit(imag(a), imag(b)) }),
}

func sameUnit[U Unit](a, b U) bool {
	if a != a || b != b {
		return a != a && b != b
	}
	return coe.BitsOf(a) == coe.BitsOf(b)
}

// testUnits returns n units mixing normal values across many magnitudes with
// zeros of both signs, infinities, NaN and the smallest subnormal.
func testUnits[U Unit](r *rand.Rand, n int) []U {
	specials := []U{
		0, U(math.Copysign(0, -1)), U(math.Inf(1)), U(math.Inf(-1)), U(math.NaN()),
		coe.FromBits[U](1), 1, -1,
	}
	out := make([]U, n)
	for i := range out {
		if r.IntN(6) == 0 {
			out[i] = specials[r.IntN(len(specials))]
			continue
		}
		out[i] = U(r.NormFloat64() * math.Pow(10, float64(r.IntN(16)-8)))
	}
	return out
}

func testElems[E any, U Unit](k Entity[E, U], r *rand.Rand, n int) []E {
	return k.AsElems(testUnits[U](r, n*k.Arity()))
}

func TestDecomposeScenario(t *testing.T) {
	k := Complex128{}
	g := k.Decompose(complex(3.0, 4.0))
	if g[0] != 3 || g[1] != 4 {
		t.Fatalf("Decompose(3+4i): got %v, want [3 4]", g)
	}
	if got := k.Recompose(g); got != complex(3.0, 4.0) {
		t.Errorf("Recompose: got %v, want (3+4i)", got)
	}

	k32 := Complex64{}
	if g := k32.Decompose(complex64(complex(3, 4))); g != Of2[float32](3, 4) {
		t.Errorf("Complex64 Decompose: got %v", g)
	}
}

func roundTrip[E any, U Unit](t *testing.T, k Entity[E, U], values []E) {
	t.Helper()
	got := make([]E, len(values))
	for i, v := range values {
		got[i] = k.Recompose(k.Decompose(v))
	}
	if diff := cmp.Diff(values, got, exactBits); diff != "" {
		t.Errorf("%s: Recompose(Decompose(v)) mismatch (-want +got):\n%s", k.Name(), diff)
	}
}

func TestDecomposeRecomposeBits(t *testing.T) {
	nan64 := math.Float64frombits(0x7ff8_0000_dead_beef)
	nan32 := math.Float32frombits(0x7fc0_beef)
	negZero := math.Copysign(0, -1)
	sub64 := math.SmallestNonzeroFloat64
	sub32 := float32(math.SmallestNonzeroFloat32)

	roundTrip[float64, float64](t, Float64{}, []float64{0, negZero, 1.5, math.Inf(1), math.Inf(-1), nan64, sub64, math.MaxFloat64})
	roundTrip[float32, float32](t, Float32{}, []float32{0, float32(negZero), 1.5, float32(math.Inf(-1)), nan32, sub32})
	roundTrip[complex128, float64](t, Complex128{}, []complex128{
		complex(3, 4), complex(negZero, 0), complex(nan64, math.Inf(1)), complex(sub64, -sub64),
	})
	roundTrip[complex64, float32](t, Complex64{}, []complex64{
		complex(3, 4), complex(float32(negZero), nan32), complex(sub32, float32(math.Inf(-1))),
	})
}

func unitsRoundTrip[E any, U Unit](t *testing.T, k Entity[E, U]) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 1000} {
		values := testElems(k, r, n)
		units := Units[E, U](k, values)
		if len(units) != n*k.Arity() {
			t.Fatalf("%s: Units(%d): got %d units, want %d", k.Name(), n, len(units), n*k.Arity())
		}
		back := FromUnits[E, U](k, units)
		if diff := cmp.Diff(values, back, exactBits); diff != "" {
			t.Errorf("%s: FromUnits(Units(n=%d)) mismatch (-want +got):\n%s", k.Name(), n, diff)
		}

		split := Group[[]U]{make([]U, n), make([]U, n)}
		Deinterleave[E, U](k, split, values)
		for i := range values {
			g := k.Decompose(values[i])
			for s := range k.Arity() {
				if !sameUnit(split[s][i], g[s]) {
					t.Fatalf("%s: Deinterleave slot %d of %d: got %v, want %v", k.Name(), s, i, split[s][i], g[s])
				}
			}
		}
		inter := make([]E, n)
		Interleave[E, U](k, inter, split)
		if diff := cmp.Diff(values, inter, exactBits); diff != "" {
			t.Errorf("%s: Interleave(Deinterleave(n=%d)) mismatch (-want +got):\n%s", k.Name(), n, diff)
		}
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	t.Run("float32", func(t *testing.T) { unitsRoundTrip[float32, float32](t, Float32{}) })
	t.Run("float64", func(t *testing.T) { unitsRoundTrip[float64, float64](t, Float64{}) })
	t.Run("complex64", func(t *testing.T) { unitsRoundTrip[complex64, float32](t, Complex64{}) })
	t.Run("complex128", func(t *testing.T) { unitsRoundTrip[complex128, float64](t, Complex128{}) })
}

func TestUnitsInterleavedOrder(t *testing.T) {
	values := []complex128{complex(1, 2), complex(3, 4)}
	units := Units[complex128, float64](Complex128{}, values)
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, units); diff != "" {
		t.Errorf("Units mismatch (-want +got):\n%s", diff)
	}
	units[0] = 10
	if values[0] != complex(10, 2) {
		t.Errorf("Units must alias its source, got %v", values[0])
	}
}

func TestEmptyViews(t *testing.T) {
	k := Complex64{}
	if got := Units[complex64, float32](k, nil); len(got) != 0 {
		t.Errorf("Units(nil): got %d units", len(got))
	}
	if got := FromUnits[complex64, float32](k, []float32{}); len(got) != 0 {
		t.Errorf("FromUnits(empty): got %d values", len(got))
	}
	Deinterleave[complex64, float32](k, Group[[]float32]{}, nil)
	Interleave[complex64, float32](k, nil, Group[[]float32]{})
	if s := SplitOf[complex64, float32](k, nil); s.Len() != 0 {
		t.Errorf("SplitOf(nil).Len: got %d", s.Len())
	}
}

func TestFromUnitsOddLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromUnits with 3 units of a complex kind should panic")
		}
	}()
	FromUnits[complex128, float64](Complex128{}, []float64{1, 2, 3})
}

func TestSplitView(t *testing.T) {
	xs := []float64{1, 2, 3}
	g, ok := SplitView[float64, float64](Float64{}, xs)
	if !ok || len(g[0]) != 3 || g[1] != nil {
		t.Fatalf("SplitView(float64): got %v, %v", g, ok)
	}
	g[0][1] = 20
	if xs[1] != 20 {
		t.Error("SplitView must alias its source")
	}

	if _, ok := SplitView[complex128, float64](Complex128{}, []complex128{1}); ok {
		t.Error("SplitView(complex128): complex kinds have no zero-copy split view")
	}
}

func TestSplit(t *testing.T) {
	k := Complex128{}
	src := []complex128{complex(1, 2), complex(3, 4), complex(5, 6)}
	s := SplitOf[complex128, float64](k, src)

	if s.Len() != 3 || s.At(1) != complex(3, 4) {
		t.Fatalf("SplitOf: Len=%d At(1)=%v", s.Len(), s.At(1))
	}
	if diff := cmp.Diff(Of2([]float64{1, 3, 5}, []float64{2, 4, 6}), s.Units()); diff != "" {
		t.Errorf("Units mismatch (-want +got):\n%s", diff)
	}

	tail := s.Slice(1, 3)
	tail.Set(0, complex(-3, -4))
	if s.At(1) != complex(-3, -4) {
		t.Errorf("Slice must share storage: got %v", s.At(1))
	}

	out := make([]complex128, 3)
	s.CopyTo(out)
	want := []complex128{complex(1, 2), complex(-3, -4), complex(5, 6)}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("CopyTo mismatch (-want +got):\n%s", diff)
	}

	r := MakeSplit[float32, float32](Float32{}, 2)
	r.CopyFrom([]float32{7, 8})
	if r.At(0) != 7 || r.Units()[1] != nil {
		t.Errorf("real Split: At(0)=%v slot1=%v", r.At(0), r.Units()[1])
	}
}

func TestSplitSliceBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Slice(2, 5) on a Split of length 3 should panic")
		}
	}()
	MakeSplit[float64, float64](Float64{}, 3).Slice(2, 5)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	want := []struct {
		name    string
		unit    string
		arity   int
		bits    int
		size    uintptr
		storage Storage
	}{
		{"float32", "float32", 1, 32, 4, Contiguous},
		{"float64", "float64", 1, 64, 8, Contiguous},
		{"complex64", "float32", 2, 32, 8, Interleaved},
		{"complex128", "float64", 2, 64, 16, Interleaved},
	}
	if len(kinds) != len(want) {
		t.Fatalf("Kinds: got %d kinds, want %d", len(kinds), len(want))
	}
	for i, w := range want {
		d := kinds[i]
		if d.Name != w.name || d.Unit != w.unit || d.Arity != w.arity || d.UnitBits != w.bits || d.Size != w.size || d.Storage != w.storage {
			t.Errorf("Kinds[%d]: got %+v, want %+v", i, d, w)
		}
		if d.Size != uintptr(d.Arity*d.UnitBits/8) {
			t.Errorf("%s: size %d is not arity*unit", d.Name, d.Size)
		}
	}

	// Mutating the returned slice must not affect the registry.
	kinds[0].Name = "x"
	if Kinds()[0].Name != "float32" {
		t.Error("Kinds must return a copy")
	}
}

func TestGroupHelpers(t *testing.T) {
	g := Of2(3.0, 4.0)
	if got := g.First(); got != 3 {
		t.Errorf("First: got %v, want 3", got)
	}
	if got := Of1(float32(7)).First(); got != 7 {
		t.Errorf("Of1(7).First: got %v", got)
	}

	doubled := Map(ArityComplex, g, func(x float64) float64 { return 2 * x })
	if diff := cmp.Diff(Of2(6.0, 8.0), doubled); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
	// Slots past the arity are left zero.
	if got := Map(ArityReal, g, func(x float64) float64 { return x + 1 }); got != Of1(4.0) {
		t.Errorf("Map(ArityReal): got %v", got)
	}

	sum := Zip(ArityComplex, g, Of2(1, 2), func(x float64, y int) float64 { return x + float64(y) })
	if sum != Of2(4.0, 6.0) {
		t.Errorf("Zip: got %v", sum)
	}

	whole, frac := Unzip(ArityComplex, Of2(2.5, -1.25), math.Modf)
	if whole != Of2(2.0, -1.0) || frac != Of2(0.5, -0.25) {
		t.Errorf("Unzip(Modf): got %v, %v", whole, frac)
	}
	hi, lo := Unzip(ArityReal, Of2(5, 9), func(x int) (int, int) { return x / 2, x % 2 })
	if hi != Of1(2) || lo != Of1(1) {
		t.Errorf("Unzip(ArityReal): got %v, %v", hi, lo)
	}
}
