// SPDX-License-Identifier: EPL-2.0

// Package roomscene models acoustic scenes and simulates what a set of
// microphones records in them.
//
// A scene is a shoebox room holding signal sources and microphones. The
// package synthesizes each source's waveform, hands it to a room acoustics
// engine for propagation, mixes the per-source arrivals at every microphone
// and applies each microphone's characteristics: sensitivity, an optional
// Butterworth filter and Gaussian self-noise.
//
// # Quick Start
//
// Build a scene and run it through an engine:
//
//	cfg := scene.New()
//	result, err := roomscene.Run(context.Background(), cfg, engine)
//	if err != nil {
//	    // Handle error
//	}
//
//	// result.Signals holds one recording per microphone,
//	// result.GroundTruth the clean reference signal.
//
// scene.New returns a minimal valid scene: a 6x5x3 meter room with one
// 440 Hz tone source and one microphone.
//
// # Scene Documents
//
// Scenes persist as versioned JSON documents:
//
//	cfg, report, err := scene.LoadFile("scene.json")
//	...
//	err = scene.SaveFile("scene.json", cfg)
//
// Loading backfills missing fields with defaults and reports everything it
// had to patch up, so old or hand-written documents keep working.
//
// # Engines
//
// The simulation talks to the acoustics engine through a single interface:
//
//	type Engine interface {
//	    Propagate(ctx context.Context, room scene.Room, src simulate.SourceWave,
//	        micPositions [][3]float64, sampleRate int) (simulate.Propagation, error)
//	}
//
// An engine answers with either per-microphone impulse responses or already
// convolved waveforms; the pipeline handles both. Any room acoustics
// backend can sit behind this interface.
//
// # Signal Sources
//
// Sources synthesize tones, linear chirps, seeded white noise and impulses,
// or play audio files. File-based sources decode through the format
// registry:
//
//	reg := roomscene.DefaultRegistry() // WAV, MP3, Ogg Vorbis, AIFF
//
// Decoded audio is resampled to the scene's rate with cubic interpolation
// and fitted to the scene duration.
//
// # Subpackages
//
//   - scene: scene configuration, validation and JSON persistence
//   - signal: waveform synthesis and the decoder registry
//   - filter: Butterworth lowpass, highpass and bandpass filters
//   - mix: waveform summation
//   - simulate: the simulation pipeline and engine interface
//   - evaluate: MSE and SNR metrics against the ground truth
//   - formats/...: audio format decoders
//
// # Exporting Audio
//
// Simulated recordings can be written out as WAV files:
//
//	file, _ := os.Create("mic0.wav")
//	roomscene.ExportWAV(file, result.SampleRate, result.Signals[0])
package roomscene
