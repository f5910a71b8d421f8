// SPDX-License-Identifier: EPL-2.0

// Package enginetest provides a deterministic stand-in for an external
// acoustics engine, for tests and examples. It models only the direct path:
// each source reaches each microphone as a delayed, distance-attenuated
// impulse, optionally with a short exponential reverb tail derived from the
// room's RT60. No diffraction, scattering or wall reflections.
package enginetest

import (
	"context"
	"math"
	"sync"

	"github.com/ik5/roomscene/scene"
	"github.com/ik5/roomscene/simulate"
)

// Engine implements simulate.Engine.
type Engine struct {
	// Identity makes every impulse response a unit impulse at delay zero,
	// so propagation output equals the source waveform. Handy for tests
	// asserting exact signal equality.
	Identity bool

	// Convolved makes Propagate return pre-convolved waveforms instead of
	// impulse responses, exercising the other half of the engine contract.
	Convolved bool

	// Tail enables an exponential decay tail after the direct impulse,
	// scaled from the room RT60.
	Tail bool

	// Fail maps source names to errors to inject per-source failures.
	Fail map[string]error

	// OnPropagate, when set, runs at the start of every Propagate call.
	// Tests use it to cancel contexts mid-run.
	OnPropagate func(sourceName string)

	mtx   sync.Mutex
	calls []string
}

// Calls returns the source names propagated so far, in call order.
func (e *Engine) Calls() []string {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	out := make([]string, len(e.calls))
	copy(out, e.calls)
	return out
}

func distance(a, b [3]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (e *Engine) impulseResponse(room scene.Room, srcPos, micPos [3]float64, sampleRate, n int) []float64 {
	ir := make([]float64, n)
	if e.Identity {
		ir[0] = 1
		return ir
	}

	d := distance(srcPos, micPos)
	delay := int(math.Round(d / scene.SpeedOfSound * float64(sampleRate)))
	if delay >= n {
		return ir
	}

	gain := 1.0
	if d > 1 {
		gain = 1 / d
	}
	ir[delay] = gain

	if e.Tail && room.RT60 > 0 {
		// 60 dB decay over RT60 seconds
		k := 6.908 / (room.RT60 * float64(sampleRate))
		for i := delay + 1; i < n; i++ {
			ir[i] = gain * 0.3 * math.Exp(-k*float64(i-delay))
		}
	}
	return ir
}

func convolve(signal, ir []float64, n int) []float64 {
	out := make([]float64, n)
	for i := range signal {
		for j := range ir {
			if i+j >= n {
				break
			}
			out[i+j] += signal[i] * ir[j]
		}
	}
	return out
}

func (e *Engine) Propagate(ctx context.Context, room scene.Room, src simulate.SourceWave, micPositions [][3]float64, sampleRate int) (simulate.Propagation, error) {
	if e.OnPropagate != nil {
		e.OnPropagate(src.Name)
	}

	e.mtx.Lock()
	e.calls = append(e.calls, src.Name)
	e.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return simulate.Propagation{}, err
	}
	if err := e.Fail[src.Name]; err != nil {
		return simulate.Propagation{}, err
	}

	n := len(src.Samples)
	var prop simulate.Propagation
	for _, micPos := range micPositions {
		ir := e.impulseResponse(room, src.Position, micPos, sampleRate, n)
		if e.Convolved {
			prop.Convolved = append(prop.Convolved, convolve(src.Samples, ir, n))
		} else {
			prop.ImpulseResponses = append(prop.ImpulseResponses, ir)
		}
	}
	return prop, nil
}
