// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"
)

// DefaultOrder is used when a Spec leaves Order unset.
const DefaultOrder = 4

// Kind selects the frequency response shape.
type Kind int

const (
	None Kind = iota
	Lowpass
	Highpass
	Bandpass
)

// String returns the stable name used in persisted scene documents.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a persisted name back to its Kind. The empty string reads
// as None so older documents without a filter field stay loadable.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "none":
		return None, nil
	case "lowpass":
		return Lowpass, nil
	case "highpass":
		return Highpass, nil
	case "bandpass":
		return Bandpass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Spec describes a Butterworth filter. Cutoff is the corner frequency in Hz;
// Bandpass uses Cutoff as the lower edge and CutoffHigh as the upper edge.
// Order zero means DefaultOrder.
type Spec struct {
	Kind       Kind
	Order      int
	Cutoff     float64
	CutoffHigh float64
}

// Result is a filtered waveform plus its degradation status. When the
// requested cutoff is unusable the input passes through unfiltered, Degraded
// is set and Warning names the bad value, so the caller can surface it
// instead of silently trusting a wrong response.
type Result struct {
	Samples  []float64
	Degraded bool
	Warning  string
}

// biquad is one second-order section in transposed direct form II.
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

func (s *biquad) process(in []float64) {
	var z1, z2 float64
	for i, x := range in {
		y := s.b0*x + z1
		z1 = s.b1*x - s.a1*y + z2
		z2 = s.b2*x - s.a2*y
		in[i] = y
	}
}

// firstOrder is the single real-pole section of odd-order cascades.
type firstOrder struct {
	b0, b1 float64
	a1     float64
}

func (s *firstOrder) process(in []float64) {
	var x1, y1 float64
	for i, x := range in {
		y := s.b0*x + s.b1*x1 - s.a1*y1
		x1 = x
		y1 = y
		in[i] = y
	}
}

// lowpassSections builds the Butterworth cascade for a lowpass at cutoff.
// Pole pairs sit at angles (2k+1)*pi/(2n) from the imaginary axis, giving the
// classic Q ladder (0.5412, 1.3066 for order 4); odd orders add one real pole.
func lowpassSections(order int, cutoff float64, sampleRate int) ([]biquad, *firstOrder) {
	w0 := 2 * math.Pi * cutoff / float64(sampleRate)
	cosw := math.Cos(w0)
	sinw := math.Sin(w0)

	pairs := order / 2
	sections := make([]biquad, 0, pairs)
	for k := 0; k < pairs; k++ {
		q := 1 / (2 * math.Sin(float64(2*k+1)*math.Pi/float64(2*order)))
		alpha := sinw / (2 * q)
		a0 := 1 + alpha
		sections = append(sections, biquad{
			b0: (1 - cosw) / 2 / a0,
			b1: (1 - cosw) / a0,
			b2: (1 - cosw) / 2 / a0,
			a1: -2 * cosw / a0,
			a2: (1 - alpha) / a0,
		})
	}

	if order%2 == 0 {
		return sections, nil
	}
	k := math.Tan(w0 / 2)
	return sections, &firstOrder{
		b0: k / (k + 1),
		b1: k / (k + 1),
		a1: (k - 1) / (k + 1),
	}
}

func highpassSections(order int, cutoff float64, sampleRate int) ([]biquad, *firstOrder) {
	w0 := 2 * math.Pi * cutoff / float64(sampleRate)
	cosw := math.Cos(w0)
	sinw := math.Sin(w0)

	pairs := order / 2
	sections := make([]biquad, 0, pairs)
	for k := 0; k < pairs; k++ {
		q := 1 / (2 * math.Sin(float64(2*k+1)*math.Pi/float64(2*order)))
		alpha := sinw / (2 * q)
		a0 := 1 + alpha
		sections = append(sections, biquad{
			b0: (1 + cosw) / 2 / a0,
			b1: -(1 + cosw) / a0,
			b2: (1 + cosw) / 2 / a0,
			a1: -2 * cosw / a0,
			a2: (1 - alpha) / a0,
		})
	}

	if order%2 == 0 {
		return sections, nil
	}
	k := math.Tan(w0 / 2)
	return sections, &firstOrder{
		b0: 1 / (k + 1),
		b1: -1 / (k + 1),
		a1: (k - 1) / (k + 1),
	}
}

func runCascade(out []float64, sections []biquad, single *firstOrder) {
	for i := range sections {
		sections[i].process(out)
	}
	if single != nil {
		single.process(out)
	}
}

func degraded(wave []float64, warning string) Result {
	out := make([]float64, len(wave))
	copy(out, wave)
	return Result{Samples: out, Degraded: true, Warning: warning}
}

// Apply filters wave according to spec. The output always has the same
// length as the input and identical inputs give bit-identical outputs.
//
// A cutoff at or below zero, or at or beyond the Nyquist frequency, does not
// fail the call: the input is returned unfiltered with Degraded set, matching
// the policy that a broken filter request must be visible but must not abort
// a run. A non-positive order or sample rate is a hard error.
func Apply(wave []float64, spec Spec, sampleRate int) (Result, error) {
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	order := spec.Order
	if order == 0 {
		order = DefaultOrder
	}
	if order < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if spec.Kind == None {
		out := make([]float64, len(wave))
		copy(out, wave)
		return Result{Samples: out}, nil
	}

	nyquist := float64(sampleRate) / 2

	badCutoff := func(name string, v float64) string {
		if math.IsNaN(v) || v <= 0 || v >= nyquist {
			return fmt.Sprintf("%s = %v outside (0, %v), signal left unfiltered", name, v, nyquist)
		}
		return ""
	}

	out := make([]float64, len(wave))
	copy(out, wave)

	switch spec.Kind {
	case Lowpass:
		if w := badCutoff("cutoff", spec.Cutoff); w != "" {
			return degraded(wave, w), nil
		}
		pairs, single := lowpassSections(order, spec.Cutoff, sampleRate)
		runCascade(out, pairs, single)
	case Highpass:
		if w := badCutoff("cutoff", spec.Cutoff); w != "" {
			return degraded(wave, w), nil
		}
		pairs, single := highpassSections(order, spec.Cutoff, sampleRate)
		runCascade(out, pairs, single)
	case Bandpass:
		if w := badCutoff("cutoff", spec.Cutoff); w != "" {
			return degraded(wave, w), nil
		}
		if w := badCutoff("cutoff_high", spec.CutoffHigh); w != "" {
			return degraded(wave, w), nil
		}
		if spec.Cutoff >= spec.CutoffHigh {
			return degraded(wave, fmt.Sprintf("band edges %v >= %v, signal left unfiltered", spec.Cutoff, spec.CutoffHigh)), nil
		}
		// Band edges as a highpass/lowpass cascade, as the original
		// low/high split does.
		hp, hpSingle := highpassSections(order, spec.Cutoff, sampleRate)
		runCascade(out, hp, hpSingle)
		lp, lpSingle := lowpassSections(order, spec.CutoffHigh, sampleRate)
		runCascade(out, lp, lpSingle)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(spec.Kind))
	}

	return Result{Samples: out}, nil
}
