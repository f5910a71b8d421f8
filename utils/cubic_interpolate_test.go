// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the interpolation must return y1, at x=1 it must return y2
	got := CubicInterpolate(0.1, 0.5, 0.9, 0.3, 0)
	if got != 0.5 {
		t.Errorf("CubicInterpolate(x=0) = %v, want 0.5", got)
	}

	got = CubicInterpolate(0.1, 0.5, 0.9, 0.3, 1)
	if math.Abs(got-0.9) > 1e-12 {
		t.Errorf("CubicInterpolate(x=1) = %v, want 0.9", got)
	}
}

func TestCubicInterpolate_Linear(t *testing.T) {
	t.Parallel()

	// Equally spaced points on a line interpolate exactly on that line
	got := CubicInterpolate(0, 1, 2, 3, 0.5)
	if math.Abs(got-1.5) > 1e-12 {
		t.Errorf("CubicInterpolate(midpoint on line) = %v, want 1.5", got)
	}
}

func TestCubicInterpolate_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := CubicInterpolate(0.7, 0.7, 0.7, 0.7, x)
		if math.Abs(got-0.7) > 1e-12 {
			t.Errorf("CubicInterpolate(constant, x=%v) = %v, want 0.7", x, got)
		}
	}
}
