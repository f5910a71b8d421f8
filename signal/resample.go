// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"

	"github.com/ik5/roomscene/utils"
)

// Resample converts src from srcRate to dstRate using cubic interpolation.
// Edge samples are duplicated so the first and last input samples are
// preserved. Works for both upsampling and downsampling.
func Resample(src []float64, srcRate, dstRate int) ([]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, fmt.Errorf("%w: resample rates %d -> %d (must be > 0)", ErrInvalidParameter, srcRate, dstRate)
	}
	if srcRate == dstRate || len(src) == 0 {
		out := make([]float64, len(src))
		copy(out, src)
		return out, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	n := int(float64(len(src)) / ratio)
	out := make([]float64, n)

	at := func(i int) float64 {
		if i < 0 {
			i = 0
		}
		if i >= len(src) {
			i = len(src) - 1
		}
		return src[i]
	}

	for i := range out {
		pos := float64(i) * ratio
		j := int(pos)
		frac := pos - float64(j)
		out[i] = utils.CubicInterpolate(at(j-1), at(j), at(j+1), at(j+2), frac)
	}

	return out, nil
}
