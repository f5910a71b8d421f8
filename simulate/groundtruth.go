// SPDX-License-Identifier: EPL-2.0

package simulate

import (
	"fmt"

	"github.com/ik5/roomscene/mix"
	"github.com/ik5/roomscene/scene"
)

// GroundTruthKind selects how the reference signal is derived.
type GroundTruthKind int

const (
	// GroundTruthPropagated takes the clean propagated signal of one source
	// at one microphone, before mixing and microphone post-processing.
	GroundTruthPropagated GroundTruthKind = iota
	// GroundTruthDry takes the rendered waveform of one source, before any
	// room interaction.
	GroundTruthDry
	// GroundTruthSum takes the sum of all rendered source waveforms.
	GroundTruthSum
)

// GroundTruth selects the reference signal for a run. Source and Mic are
// ordinal indices into the configured lists, so the selection stays
// deterministic regardless of names.
//
// The default of the first source at the first microphone is a placeholder
// policy: with several sources there is no single obvious "truth" yet, so
// callers evaluating multi-source scenes should pick explicitly.
type GroundTruth struct {
	Kind   GroundTruthKind
	Source int
	Mic    int
}

// DefaultGroundTruth is the propagated signal of source 0 at microphone 0.
func DefaultGroundTruth() GroundTruth {
	return GroundTruth{Kind: GroundTruthPropagated, Source: 0, Mic: 0}
}

func (g GroundTruth) validate(cfg scene.Config) error {
	if g.Source < 0 || g.Source >= len(cfg.Sources) {
		return fmt.Errorf("%w: ground truth source index %d with %d sources", scene.ErrInvariant, g.Source, len(cfg.Sources))
	}
	if g.Kind == GroundTruthPropagated && (g.Mic < 0 || g.Mic >= len(cfg.Mics)) {
		return fmt.Errorf("%w: ground truth microphone index %d with %d microphones", scene.ErrInvariant, g.Mic, len(cfg.Mics))
	}
	return nil
}

// pick derives the reference from the rendered (dry) and propagated
// ([source][mic]) signal matrices. The result never aliases the pipeline's
// buffers.
func (g GroundTruth) pick(dry [][]float64, propagated [][][]float64) ([]float64, error) {
	switch g.Kind {
	case GroundTruthPropagated:
		out := make([]float64, len(propagated[g.Source][g.Mic]))
		copy(out, propagated[g.Source][g.Mic])
		return out, nil
	case GroundTruthDry:
		out := make([]float64, len(dry[g.Source]))
		copy(out, dry[g.Source])
		return out, nil
	case GroundTruthSum:
		return mix.Combine(dry)
	default:
		return nil, fmt.Errorf("%w: ground truth kind %d", scene.ErrInvariant, int(g.Kind))
	}
}
