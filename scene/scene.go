// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"github.com/ik5/roomscene/filter"
	"github.com/ik5/roomscene/signal"
)

// Room is the shoebox geometry the acoustics engine simulates in.
type Room struct {
	// Dim is length, width and height in meters.
	Dim [3]float64
	// RT60 is the reverberation time in seconds.
	RT60 float64
}

// Source is one sound source: where it sits and what it emits.
type Source struct {
	Name     string
	Position [3]float64
	Signal   signal.Type
	Params   signal.Params
}

// Mic is one microphone: position plus the response model applied to
// whatever the room delivers to it.
type Mic struct {
	Name        string
	Position    [3]float64
	Sensitivity float64
	// NoiseStd is the standard deviation of the additive Gaussian
	// self-noise, the same amplitude convention white-noise sources use.
	NoiseStd float64
	Filter   filter.Spec
}

// Config is the full description of an acoustic scene. It exclusively owns
// its sources and microphones; a simulation run treats it as an immutable
// snapshot.
type Config struct {
	Version  string
	Room     Room
	Duration float64
	Sources  []Source
	Mics     []Mic
}

// New returns a simulatable single-source single-mic scene built entirely
// from the package defaults.
func New() Config {
	return Config{
		Version:  CurrentVersion,
		Room:     DefaultRoom(),
		Duration: DefaultDuration,
		Sources:  []Source{DefaultSource()},
		Mics:     []Mic{DefaultMic()},
	}
}
