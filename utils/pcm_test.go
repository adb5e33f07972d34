// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"max negative", -1.0, -math.MaxInt16},
		{"half", 0.5, 16383},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -100.0, -math.MaxInt16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int16{0, 1, -1, 1000, -1000, 32767, -32768} {
		f := Int16ToFloat32(v)
		if f < -1 || f > 1 {
			t.Errorf("Int16ToFloat32(%d) = %v, outside [-1, 1]", v, f)
		}

		back := Float32ToInt16(f)
		if diff := int(back) - int(v); diff < -1 || diff > 1 {
			t.Errorf("round trip of %d gave %d", v, back)
		}
	}
}

func TestPCMScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768}, // unknown depth falls back to 16-bit
	}

	for _, tt := range tests {
		if got := PCMScale(tt.bitDepth); got != tt.want {
			t.Errorf("PCMScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestIntToFloat32_FullScale(t *testing.T) {
	t.Parallel()

	// Full-scale positive at each depth normalizes just under 1.0.
	for _, depth := range []int{8, 16, 24} {
		maxVal := int(PCMScale(depth)) - 1
		f := IntToFloat32(maxVal, depth)
		if f <= 0.99 || f > 1 {
			t.Errorf("IntToFloat32(max, %d-bit) = %v, want just under 1.0", depth, f)
		}
	}
}

func TestFloat32ToInt_Clamps(t *testing.T) {
	t.Parallel()

	want := int(PCMScale(24)) - 1
	if got := Float32ToInt(2.0, 24); got != want {
		t.Errorf("Float32ToInt(2.0, 24) = %d, want %d", got, want)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16

	b.ReportAllocs()

	for bi := 0; bi < b.N; bi++ {
		result = Float32ToInt16(0.5)
	}

	_ = result
}
