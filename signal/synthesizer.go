// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Synthesizer renders any signal variant, including file-based signals, by
// carrying the decoder registry that Synthesize alone does not have.
type Synthesizer struct {
	reg *Registry
}

// NewSynthesizer wraps a registry. A nil registry is allowed; rendering a
// file-based signal then fails with ErrUnknownFormat.
func NewSynthesizer(reg *Registry) *Synthesizer {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Synthesizer{reg: reg}
}

// Render synthesizes the waveform for typ. In-memory variants go straight to
// Synthesize; file-based signals are decoded, resampled to sampleRate and
// truncated or zero-padded to exactly duration seconds.
func (s *Synthesizer) Render(typ Type, p Params, duration float64, sampleRate int) ([]float64, error) {
	if typ != TypeFile {
		return Synthesize(typ, p, duration, sampleRate)
	}

	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, fmt.Errorf("%w: duration = %v (must be > 0)", ErrInvalidParameter, duration)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate = %d (must be > 0)", ErrInvalidParameter, sampleRate)
	}
	if err := Validate(typ, p); err != nil {
		return nil, err
	}

	format := p.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(p.Path), ".")
	}
	dec, ok := s.reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", p.Path, err)
	}
	defer f.Close()

	samples, nativeRate, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", p.Path, err)
	}

	if nativeRate != sampleRate {
		samples, err = Resample(samples, nativeRate, sampleRate)
		if err != nil {
			return nil, err
		}
	}

	// Fit to the scene duration: drop the tail or pad with silence.
	n := NumSamples(duration, sampleRate)
	if len(samples) >= n {
		return samples[:n], nil
	}
	out := make([]float64, n)
	copy(out, samples)
	return out, nil
}
