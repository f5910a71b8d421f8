// SPDX-License-Identifier: EPL-2.0

package evaluate

import "math"

// MSE compares the plain average of the recorded signals against the
// reference. Lengths may differ: the comparison runs over the shortest
// recording, and a longer reference is cut while a shorter one is
// zero-padded. Returns +Inf when there is nothing to compare, so a missing
// run reads as "infinitely bad" instead of "perfect".
func MSE(recorded [][]float64, truth []float64) float64 {
	if len(recorded) == 0 {
		return math.Inf(1)
	}

	minLen := len(recorded[0])
	for _, s := range recorded[1:] {
		if len(s) < minLen {
			minLen = len(s)
		}
	}
	if minLen == 0 {
		return math.Inf(1)
	}

	inv := 1 / float64(len(recorded))
	var sum float64
	for i := 0; i < minLen; i++ {
		var combined float64
		for _, s := range recorded {
			combined += s[i]
		}
		combined *= inv

		var ref float64
		if i < len(truth) {
			ref = truth[i]
		}
		d := combined - ref
		sum += d * d
	}
	return sum / float64(minLen)
}

// SNR returns the signal-to-noise ratio in dB. Zero noise power yields +Inf.
func SNR(signal, noise []float64) float64 {
	ps := power(signal)
	pn := power(noise)
	if pn == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(ps/pn)
}

func power(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		sum += v * v
	}
	return sum / float64(len(samples))
}
