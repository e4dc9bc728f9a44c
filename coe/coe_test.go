package coe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutOf(t *testing.T) {
	require.Equal(t, Layout{Size: 4, Align: 4}, LayoutOf[float32]())
	require.Equal(t, Layout{Size: 16, Align: 8}, LayoutOf[complex128]())
	require.Equal(t, uintptr(8), LayoutOf[complex64]().Size)
}

func TestProveShrink(t *testing.T) {
	p := Prove[complex128, float64]()
	num, den := p.Ratio()
	require.Equal(t, 2, num)
	require.Equal(t, 1, den)

	values := []complex128{complex(1, 2), complex(3, 4)}
	units := p.Slice(values)
	require.Equal(t, []float64{1, 2, 3, 4}, units)

	// Views alias the source.
	units[3] = -4
	require.Equal(t, complex(3, -4), values[1])
}

func TestProveGrow(t *testing.T) {
	p := Prove[float32, complex64]()
	values := p.Slice([]float32{1, 2, 3, 4})
	require.Equal(t, []complex64{complex(1, 2), complex(3, 4)}, values)

	require.PanicsWithValue(t, "coe: length 3 is not a multiple of 2", func() {
		p.Slice([]float32{1, 2, 3})
	})
}

func TestProveRejectsIncompatible(t *testing.T) {
	// float64 alignment is stricter than float32's.
	require.Panics(t, func() { Prove[float32, float64]() })
	// Sizes divide, but complex64 needs 4-byte alignment.
	require.Panics(t, func() { Prove[int16, complex64]() })
	require.NotPanics(t, func() { Prove[uint64, float64]() })
}

func TestEmptySlices(t *testing.T) {
	p := Prove[complex64, float32]()
	require.Nil(t, p.Slice(nil))
	require.Empty(t, p.Slice([]complex64{}))
	require.Empty(t, AsBytes[float64](nil))
	require.Empty(t, FromBytes[float64](nil))
}

func TestZeroProofPanics(t *testing.T) {
	var p Proof[float64, float64]
	require.Panics(t, func() { p.Slice([]float64{1}) })
}

func TestValue(t *testing.T) {
	p := Prove[float64, uint64]()
	require.Equal(t, math.Float64bits(-1.5), p.Value(-1.5))

	wide := Prove[complex128, float64]()
	require.Panics(t, func() { wide.Value(1) })
}

func TestTransmute(t *testing.T) {
	nan := math.Float32frombits(0x7fc0_0abc)
	require.Equal(t, uint32(0x7fc0_0abc), Transmute[float32, uint32](nan))
	require.Equal(t, complex(float32(1), float32(-2)), Transmute[uint64, complex64](Transmute[complex64, uint64](complex(1, -2))))
	require.Panics(t, func() { Transmute[float32, float64](1) })
}

func TestBytesRoundTrip(t *testing.T) {
	src := []float64{0, math.Copysign(0, -1), math.Inf(1), math.NaN(), 5e-324}
	b := AsBytes(src)
	require.Len(t, b, len(src)*8)

	back := FromBytes[float64](b)
	require.Len(t, back, len(src))
	for i := range src {
		require.Equal(t, math.Float64bits(src[i]), math.Float64bits(back[i]), "element %d", i)
	}

	require.Panics(t, func() { FromBytes[float64](b[:7]) })
	require.Panics(t, func() { FromBytes[float64](b[1:9]) })
}

func TestBits(t *testing.T) {
	tests := []struct {
		name string
		f32  float32
		f64  float64
	}{
		{"zero", 0, 0},
		{"negzero", float32(math.Copysign(0, -1)), math.Copysign(0, -1)},
		{"inf", float32(math.Inf(-1)), math.Inf(-1)},
		{"subnormal", math.SmallestNonzeroFloat32, math.SmallestNonzeroFloat64},
		{"nan", math.Float32frombits(0x7f80_0001), math.Float64frombits(0x7ff0_0000_0000_0001)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, uint64(math.Float32bits(tt.f32)), BitsOf(tt.f32))
			require.Equal(t, math.Float64bits(tt.f64), BitsOf(tt.f64))
			require.Equal(t, math.Float32bits(tt.f32), math.Float32bits(FromBits[float32](BitsOf(tt.f32))))
			require.Equal(t, math.Float64bits(tt.f64), math.Float64bits(FromBits[float64](BitsOf(tt.f64))))
		})
	}
}
