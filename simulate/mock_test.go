// SPDX-License-Identifier: EPL-2.0

package simulate

import (
	"context"

	"github.com/ik5/roomscene/scene"
)

// identityEngine answers every propagation with a unit impulse at delay
// zero, so the propagated signal equals the source waveform at every mic.
type identityEngine struct {
	calls []string
}

func (e *identityEngine) Propagate(_ context.Context, _ scene.Room, src SourceWave, micPositions [][3]float64, _ int) (Propagation, error) {
	e.calls = append(e.calls, src.Name)

	var p Propagation
	for range micPositions {
		p.ImpulseResponses = append(p.ImpulseResponses, []float64{1})
	}
	return p, nil
}

// delayEngine delays every source by a fixed number of samples.
type delayEngine struct {
	delay int
}

func (e delayEngine) Propagate(_ context.Context, _ scene.Room, _ SourceWave, micPositions [][3]float64, _ int) (Propagation, error) {
	ir := make([]float64, e.delay+1)
	ir[e.delay] = 1

	var p Propagation
	for range micPositions {
		p.ImpulseResponses = append(p.ImpulseResponses, ir)
	}
	return p, nil
}

// convolvedEngine exercises the pre-convolved half of the engine contract
// by echoing the source waveform back as the per-mic recording.
type convolvedEngine struct{}

func (convolvedEngine) Propagate(_ context.Context, _ scene.Room, src SourceWave, micPositions [][3]float64, _ int) (Propagation, error) {
	var p Propagation
	for range micPositions {
		s := make([]float64, len(src.Samples))
		copy(s, src.Samples)
		p.Convolved = append(p.Convolved, s)
	}
	return p, nil
}

// failingEngine fails for one named source and behaves as identity for the
// rest.
type failingEngine struct {
	identityEngine
	failOn string
	err    error
}

func (e *failingEngine) Propagate(ctx context.Context, room scene.Room, src SourceWave, micPositions [][3]float64, rate int) (Propagation, error) {
	if src.Name == e.failOn {
		return Propagation{}, e.err
	}
	return e.identityEngine.Propagate(ctx, room, src, micPositions, rate)
}

// cancelingEngine cancels the run's context after its first successful
// call, so the orchestrator's between-sources check trips on the next
// source.
type cancelingEngine struct {
	identityEngine
	cancel context.CancelFunc
}

func (e *cancelingEngine) Propagate(ctx context.Context, room scene.Room, src SourceWave, micPositions [][3]float64, rate int) (Propagation, error) {
	p, err := e.identityEngine.Propagate(ctx, room, src, micPositions, rate)
	e.cancel()
	return p, err
}
