// SPDX-License-Identifier: EPL-2.0

package simulate

import (
	"context"
	"fmt"

	"github.com/ik5/roomscene/scene"
)

// SourceWave is what the engine receives per source: its geometry and the
// already-synthesized waveform at the scene sample rate.
type SourceWave struct {
	Name     string
	Position [3]float64
	Samples  []float64
}

// Engine is the external acoustics solver. Given the room, one source and
// every microphone position, it computes how the room carries that source to
// each microphone. Implementations may return either raw impulse responses
// or already-convolved waveforms; the orchestrator normalizes both shapes.
//
// Engines are called once per source and must honor ctx cancellation.
type Engine interface {
	Propagate(ctx context.Context, room scene.Room, src SourceWave, micPositions [][3]float64, sampleRate int) (Propagation, error)
}

// Propagation is one engine answer: exactly one of the two fields is set,
// each holding one entry per microphone in request order.
type Propagation struct {
	// ImpulseResponses holds the room impulse response between the source
	// and each microphone. The orchestrator convolves it with the source
	// waveform.
	ImpulseResponses [][]float64

	// Convolved holds the source waveform as heard at each microphone,
	// already convolved by the engine.
	Convolved [][]float64
}

// fitLength trims or zero-pads s to exactly n samples. This is length
// normalization of engine output (reverb tails run past the scene duration),
// not mixing: by the time signals reach the mixer they all have length n.
func fitLength(s []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, s)
	return out
}

// convolve returns the first n samples of src * ir.
func convolve(src, ir []float64, n int) []float64 {
	out := make([]float64, n)
	for i, x := range src {
		if x == 0 {
			continue
		}
		limit := n - i
		if limit > len(ir) {
			limit = len(ir)
		}
		for j := 0; j < limit; j++ {
			out[i+j] += x * ir[j]
		}
	}
	return out
}

// waveforms normalizes an engine answer to per-microphone waveforms of
// exactly n samples.
func (p Propagation) waveforms(src []float64, numMics, n int) ([][]float64, error) {
	switch {
	case p.Convolved != nil:
		if len(p.Convolved) != numMics {
			return nil, fmt.Errorf("%w: %d convolved signals for %d microphones", ErrBadEngine, len(p.Convolved), numMics)
		}
		out := make([][]float64, numMics)
		for i, s := range p.Convolved {
			out[i] = fitLength(s, n)
		}
		return out, nil
	case p.ImpulseResponses != nil:
		if len(p.ImpulseResponses) != numMics {
			return nil, fmt.Errorf("%w: %d impulse responses for %d microphones", ErrBadEngine, len(p.ImpulseResponses), numMics)
		}
		out := make([][]float64, numMics)
		for i, ir := range p.ImpulseResponses {
			out[i] = convolve(src, ir, n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: neither impulse responses nor convolved signals", ErrBadEngine)
	}
}
