// SPDX-License-Identifier: EPL-2.0

// Package filter models microphone frequency responses with digital
// Butterworth filters.
//
// # Shapes
//
// A Spec selects one of four response kinds:
//   - None: pass-through
//   - Lowpass / Highpass: single corner frequency
//   - Bandpass: lower and upper band edges, built as a highpass into a
//     lowpass cascade
//
// Filters are built as cascaded second-order sections with the Butterworth
// Q ladder, plus one first-order section for odd orders. Order defaults to 4
// when a Spec leaves it unset.
//
// # Degradation Policy
//
// A cutoff at or below zero, or at or beyond the Nyquist frequency, cannot
// produce a meaningful filter. Instead of failing the run or silently
// producing a wrong response, Apply returns the input unchanged with
// Result.Degraded set and a Warning naming the offending value:
//
//	res, err := filter.Apply(wave, filter.Spec{Kind: filter.Lowpass, Cutoff: 99999}, 16000)
//	// err == nil, res.Degraded == true, res.Samples == wave
//
// A non-positive order or sample rate is a hard error; there is no sensible
// fallback for those.
//
// # Determinism
//
// Apply has no hidden state: identical inputs produce bit-identical outputs,
// and the output always has the same length as the input.
package filter
