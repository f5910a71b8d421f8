// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"github.com/ik5/roomscene/filter"
	"github.com/ik5/roomscene/signal"
)

// Process-wide acoustic constants. The sample rate is shared by synthesis,
// filtering and the external engine; it is passed explicitly through every
// call rather than read from mutable state, so concurrent simulations can
// run at different rates.
const (
	DefaultSampleRate = 16000
	SpeedOfSound      = 343.0
)

// CurrentVersion is written into every saved document. Documents with a
// missing or unrecognized config_version are read as OldestVersion rather
// than rejected.
const (
	CurrentVersion = "1.0"
	OldestVersion  = "1.0"
)

// Scene-level defaults used to backfill missing document fields.
const (
	DefaultDuration = 0.2
	DefaultRT60     = 0.3
)

const (
	DefaultSensitivity = 1.0
	DefaultNoiseStd    = 0.001
	DefaultSourceName  = "Default Source"
	DefaultMicName     = "Default Mic"
)

// DefaultRoom is the 6 x 5 x 3 meter shoebox every empty scene starts with.
func DefaultRoom() Room {
	return Room{Dim: [3]float64{6, 5, 3}, RT60: DefaultRT60}
}

// DefaultSource is the source appended when a loaded scene has none: a
// 440 Hz tone near the room center.
func DefaultSource() Source {
	return Source{
		Name:     DefaultSourceName,
		Position: [3]float64{2, 3, 1.5},
		Signal:   signal.TypeTone,
		Params: signal.Params{
			Components: []signal.Component{{Freq: 440, Amp: 1.0}},
		},
	}
}

// DefaultMic is the microphone appended when a loaded scene has none:
// unit sensitivity, quiet self-noise, flat response.
func DefaultMic() Mic {
	return Mic{
		Name:        DefaultMicName,
		Position:    [3]float64{4, 2.5, 1.5},
		Sensitivity: DefaultSensitivity,
		NoiseStd:    DefaultNoiseStd,
		Filter:      filter.Spec{Kind: filter.None, Order: filter.DefaultOrder},
	}
}
