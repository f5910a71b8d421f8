// SPDX-License-Identifier: EPL-2.0

package roomscene

import (
	"context"
	"io"

	"github.com/ik5/roomscene/formats/aiff"
	"github.com/ik5/roomscene/formats/mp3"
	"github.com/ik5/roomscene/formats/vorbis"
	"github.com/ik5/roomscene/formats/wav"
	"github.com/ik5/roomscene/scene"
	"github.com/ik5/roomscene/signal"
	"github.com/ik5/roomscene/simulate"
)

// DefaultRegistry returns a decoder registry with every built-in audio
// format registered: WAV, MP3, Ogg Vorbis and AIFF. File-based sources in a
// scene pick their decoder by file extension, so both "aiff" and "aif" map
// to the AIFF decoder.
func DefaultRegistry() *signal.Registry {
	reg := signal.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// Run simulates cfg through engine with all built-in audio formats
// available to file-based sources. Further options are applied after the
// registry, so simulate.WithRegistry can still override it.
func Run(ctx context.Context, cfg scene.Config, engine simulate.Engine, opts ...simulate.Option) (*simulate.Result, error) {
	opts = append([]simulate.Option{simulate.WithRegistry(DefaultRegistry())}, opts...)
	return simulate.New(engine, opts...).Run(ctx, cfg)
}

// RunFile loads a scene document from path and simulates it like Run does.
// The load report is returned whenever loading succeeded, even if the
// simulation itself then fails.
func RunFile(ctx context.Context, path string, engine simulate.Engine, opts ...simulate.Option) (*simulate.Result, *scene.LoadReport, error) {
	cfg, report, err := scene.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	res, err := Run(ctx, cfg, engine, opts...)
	if err != nil {
		return nil, report, err
	}
	return res, report, nil
}

// ExportWAV writes one simulated signal as a mono 16-bit PCM WAV stream,
// typically a single entry of simulate.Result.Signals.
func ExportWAV(w io.WriteSeeker, sampleRate int, samples []float64) error {
	return wav.Encode(w, sampleRate, samples)
}
