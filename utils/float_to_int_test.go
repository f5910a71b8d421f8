// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767}, // positive full scale clips
		{-1, -32768},
		{2, 32767},   // clamped
		{-2, -32768}, // clamped
		{0.5, 16384},
		{-0.5, -16384},
		{0.25, 8192},
	}

	for _, tc := range tests {
		if got := FloatToInt16(tc.in); got != tc.want {
			t.Errorf("FloatToInt16(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloatToInt16_InvertsDecoderScale(t *testing.T) {
	t.Parallel()

	// Quantizing and dividing by 32768 (the decoders' normalization) must
	// land within half a quantization step of the input.
	const step = 1.0 / 32768

	for _, x := range []float64{0.4303710135019718, -0.731, 0.0001, -0.0001, 0.99997, -0.99998} {
		back := float64(FloatToInt16(x)) / 32768
		if math.Abs(back-x) > step/2 {
			t.Errorf("round trip of %v = %v, error %v exceeds half a step", x, back, math.Abs(back-x))
		}
	}
}
