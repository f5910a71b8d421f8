// SPDX-License-Identifier: EPL-2.0

// Package signal synthesizes source waveforms for acoustic scene simulation.
//
// # Signal Variants
//
// Signals form a closed set of variants, identified by Type:
//   - TypeTone: a sum of sinusoid components (frequency + amplitude pairs)
//   - TypeChirp: a linear frequency sweep
//   - TypeWhiteNoise: Gaussian noise whose amplitude is a standard deviation
//   - TypeImpulse: a single scaled impulse at an optional delay
//   - TypeFile: samples decoded from an audio file
//
// Synthesis dispatches exhaustively over the Type, so a new variant is a
// compile-time visible change rather than an open-ended string branch.
//
// # Synthesis
//
// In-memory variants are pure functions of their inputs:
//
//	wave, err := signal.Synthesize(signal.TypeTone, signal.Params{
//	    Components: []signal.Component{{Freq: 440, Amp: 0.7}},
//	}, 0.2, 16000)
//
// The returned waveform always has exactly duration * sampleRate samples.
// Invalid durations, sample rates or variant parameters fail with
// ErrInvalidParameter and no partial waveform is returned.
//
// # File-Based Signals
//
// File-based signals need a decoder Registry mapping format keys to decoders
// from the formats subpackages:
//
//	reg := signal.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	synth := signal.NewSynthesizer(reg)
//	wave, err := synth.Render(signal.TypeFile, signal.Params{Path: "speech.wav"}, 1.0, 16000)
//
// Decoded audio is mono, resampled to the requested rate with cubic
// interpolation, and truncated or zero-padded to the requested duration.
//
// # Determinism
//
// White noise draws from a PCG generator. With a non-zero Seed in Params the
// output is reproducible; with Seed zero every synthesis gets a fresh random
// seed so independent noise sources stay uncorrelated.
package signal
