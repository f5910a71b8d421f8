// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"
	"math"

	"github.com/ik5/roomscene/signal"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r Room) validate() error {
	for i, d := range r.Dim {
		if !finite(d) || d <= 0 {
			return fmt.Errorf("%w: room_dim[%d] = %v (must be finite and > 0)", ErrInvariant, i, d)
		}
	}
	if !finite(r.RT60) || r.RT60 < 0 {
		return fmt.Errorf("%w: rt60 = %v (must be finite and >= 0)", ErrInvariant, r.RT60)
	}
	return nil
}

func inRoom(pos [3]float64, room Room) bool {
	for i, p := range pos {
		if !finite(p) || p < 0 || p > room.Dim[i] {
			return false
		}
	}
	return true
}

// Validate re-checks every construction invariant, so a freshly built scene
// and a freshly loaded one go through identical checks. The returned error
// wraps ErrInvariant and names the field that failed.
func (c Config) Validate() error {
	if err := c.Room.validate(); err != nil {
		return err
	}
	if !finite(c.Duration) || c.Duration < 0 {
		return fmt.Errorf("%w: duration = %v (must be finite and >= 0)", ErrInvariant, c.Duration)
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: scene has no sources", ErrInvariant)
	}
	if len(c.Mics) == 0 {
		return fmt.Errorf("%w: scene has no microphones", ErrInvariant)
	}

	names := make(map[string]struct{}, len(c.Sources))
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("%w: sources_data[%d].name is empty", ErrInvariant, i)
		}
		if _, dup := names[src.Name]; dup {
			return fmt.Errorf("%w: duplicate source name %q", ErrInvariant, src.Name)
		}
		names[src.Name] = struct{}{}

		if !inRoom(src.Position, c.Room) {
			return fmt.Errorf("%w: source %q position %v outside room %v", ErrInvariant, src.Name, src.Position, c.Room.Dim)
		}
		if err := signal.Validate(src.Signal, src.Params); err != nil {
			return fmt.Errorf("source %q: %w", src.Name, err)
		}
	}

	names = make(map[string]struct{}, len(c.Mics))
	for i, mic := range c.Mics {
		if mic.Name == "" {
			return fmt.Errorf("%w: mics_data[%d].name is empty", ErrInvariant, i)
		}
		if _, dup := names[mic.Name]; dup {
			return fmt.Errorf("%w: duplicate microphone name %q", ErrInvariant, mic.Name)
		}
		names[mic.Name] = struct{}{}

		if !inRoom(mic.Position, c.Room) {
			return fmt.Errorf("%w: microphone %q position %v outside room %v", ErrInvariant, mic.Name, mic.Position, c.Room.Dim)
		}
		if !finite(mic.Sensitivity) || mic.Sensitivity <= 0 {
			return fmt.Errorf("%w: microphone %q sensitivity = %v (must be finite and > 0)", ErrInvariant, mic.Name, mic.Sensitivity)
		}
		if !finite(mic.NoiseStd) || mic.NoiseStd < 0 {
			return fmt.Errorf("%w: microphone %q noise_std = %v (must be finite and >= 0)", ErrInvariant, mic.Name, mic.NoiseStd)
		}
		if mic.Filter.Order < 0 {
			return fmt.Errorf("%w: microphone %q filter_order = %d (must be >= 1, or 0 for the default)", ErrInvariant, mic.Name, mic.Filter.Order)
		}
	}

	return nil
}
