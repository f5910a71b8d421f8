// SPDX-License-Identifier: EPL-2.0

package mix

import "fmt"

// Combine sums the per-source signals arriving at one microphone into the
// single signal that microphone records. Every input must share the same
// length; a mismatch is an ErrShapeMismatch, never a silent truncation,
// because truncated mixes would corrupt every downstream evaluation.
//
// All inputs are assumed to share one sample rate; the orchestrator
// guarantees that by synthesizing and propagating everything at the scene
// rate.
func Combine(signals [][]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: no signals to combine", ErrShapeMismatch)
	}

	n := len(signals[0])
	for i, s := range signals {
		if len(s) != n {
			return nil, fmt.Errorf("%w: signal %d has %d samples, signal 0 has %d", ErrShapeMismatch, i, len(s), n)
		}
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}

// Average combines signals and divides by their count. Used for evaluating
// a microphone array against a reference, not for the recording pipeline.
func Average(signals [][]float64) ([]float64, error) {
	out, err := Combine(signals)
	if err != nil {
		return nil, err
	}
	inv := 1 / float64(len(signals))
	for i := range out {
		out[i] *= inv
	}
	return out, nil
}
