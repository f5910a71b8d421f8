// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt16 converts a normalized sample in [-1, 1] to 16-bit PCM.
// Rounding on the full 32768 scale is the inverse of the decoders'
// division by 32768, so an encode/decode round trip stays within half a
// quantization step.
func FloatToInt16(x float64) int16 {
	n := int(math.Round(x * 32768.0))

	// Positive full scale clips at 32767
	if n > 32767 {
		n = 32767
	} else if n < -32768 {
		n = -32768
	}
	return int16(n)
}
