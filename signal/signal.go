// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Type identifies a signal variant. The set is closed: Synthesize dispatches
// exhaustively over it, so adding a variant means extending the switch there.
type Type int

const (
	TypeTone Type = iota
	TypeChirp
	TypeWhiteNoise
	TypeImpulse
	TypeFile
)

// String returns the stable name used in persisted scene documents.
func (t Type) String() string {
	switch t {
	case TypeTone:
		return "tone"
	case TypeChirp:
		return "chirp"
	case TypeWhiteNoise:
		return "white_noise"
	case TypeImpulse:
		return "impulse"
	case TypeFile:
		return "file"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a persisted name back to its Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "tone":
		return TypeTone, nil
	case "chirp":
		return TypeChirp, nil
	case "white_noise":
		return TypeWhiteNoise, nil
	case "impulse":
		return TypeImpulse, nil
	case "file":
		return TypeFile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Component is one sinusoid of a tone signal.
type Component struct {
	Freq float64 `json:"freq"`
	Amp  float64 `json:"amp"`
}

// Params carries the per-variant synthesis parameters. Only the fields of the
// active Type are consulted; the rest stay at their zero values and are
// omitted from persisted documents.
type Params struct {
	// Tone: one or more sinusoid components summed together.
	Components []Component `json:"components,omitempty"`

	// Chirp: linear frequency sweep from StartFreq to EndFreq.
	StartFreq float64 `json:"start_freq,omitempty"`
	EndFreq   float64 `json:"end_freq,omitempty"`

	// Chirp, WhiteNoise and Impulse amplitude. For WhiteNoise this is the
	// standard deviation of the Gaussian samples, not a peak value.
	Amplitude float64 `json:"amplitude,omitempty"`

	// WhiteNoise: seed for the noise generator. Zero means a fresh random
	// seed per synthesis, so two unseeded noise sources stay independent.
	Seed uint64 `json:"seed,omitempty"`

	// Impulse: delay of the impulse from signal start, in seconds.
	Delay float64 `json:"delay,omitempty"`

	// File: path of the audio file and optional format override. When Format
	// is empty the file extension selects the decoder.
	Path   string `json:"path,omitempty"`
	Format string `json:"format,omitempty"`
}

func finiteNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s = %v (must be finite and non-negative)", ErrInvalidParameter, name, v)
	}
	return nil
}

// Validate checks that p carries everything the variant typ requires.
// Scene validation and Synthesize run the same checks.
func Validate(typ Type, p Params) error {
	switch typ {
	case TypeTone:
		if len(p.Components) == 0 {
			return fmt.Errorf("%w: tone needs at least one component", ErrInvalidParameter)
		}
		for i, c := range p.Components {
			if math.IsNaN(c.Freq) || math.IsInf(c.Freq, 0) || c.Freq <= 0 {
				return fmt.Errorf("%w: components[%d].freq = %v (must be finite and > 0)", ErrInvalidParameter, i, c.Freq)
			}
			if err := finiteNonNegative(fmt.Sprintf("components[%d].amp", i), c.Amp); err != nil {
				return err
			}
		}
		return nil
	case TypeChirp:
		if err := finiteNonNegative("start_freq", p.StartFreq); err != nil {
			return err
		}
		if err := finiteNonNegative("end_freq", p.EndFreq); err != nil {
			return err
		}
		return finiteNonNegative("amplitude", p.Amplitude)
	case TypeWhiteNoise:
		return finiteNonNegative("amplitude", p.Amplitude)
	case TypeImpulse:
		if err := finiteNonNegative("amplitude", p.Amplitude); err != nil {
			return err
		}
		return finiteNonNegative("delay", p.Delay)
	case TypeFile:
		if p.Path == "" {
			return fmt.Errorf("%w: file signal needs a path", ErrInvalidParameter)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
}

// NumSamples returns the waveform length for duration seconds at sampleRate.
func NumSamples(duration float64, sampleRate int) int {
	return int(math.Round(duration * float64(sampleRate)))
}

// Synthesize generates the waveform for one of the in-memory signal variants.
// It is a pure function of its inputs: the same arguments always yield the
// same samples (white noise included, once a Seed is set). File-based signals
// need a decoder registry and go through Synthesizer.Render instead.
//
// Fails with ErrInvalidParameter when duration or sampleRate is not positive
// or a required variant parameter is missing or out of range. No partial
// waveform is ever returned on failure.
func Synthesize(typ Type, p Params, duration float64, sampleRate int) ([]float64, error) {
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil, fmt.Errorf("%w: duration = %v (must be > 0)", ErrInvalidParameter, duration)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate = %d (must be > 0)", ErrInvalidParameter, sampleRate)
	}
	if err := Validate(typ, p); err != nil {
		return nil, err
	}

	n := NumSamples(duration, sampleRate)
	out := make([]float64, n)

	switch typ {
	case TypeTone:
		for i := range out {
			t := float64(i) / float64(sampleRate)
			var v float64
			for _, c := range p.Components {
				v += c.Amp * math.Sin(2*math.Pi*c.Freq*t)
			}
			out[i] = v
		}
	case TypeChirp:
		// Linear sweep: instantaneous frequency moves from StartFreq to
		// EndFreq over the full duration, phase integrated analytically.
		k := (p.EndFreq - p.StartFreq) / (2 * duration)
		for i := range out {
			t := float64(i) / float64(sampleRate)
			out[i] = p.Amplitude * math.Sin(2*math.Pi*(p.StartFreq+k*t)*t)
		}
	case TypeWhiteNoise:
		seed := p.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		for i := range out {
			out[i] = p.Amplitude * rng.NormFloat64()
		}
	case TypeImpulse:
		at := NumSamples(p.Delay, sampleRate)
		if at >= n {
			return nil, fmt.Errorf("%w: delay = %v places the impulse past the signal end", ErrInvalidParameter, p.Delay)
		}
		out[at] = p.Amplitude
	case TypeFile:
		return nil, fmt.Errorf("%w: file signals need a Synthesizer with a decoder registry", ErrInvalidParameter)
	}

	return out, nil
}
