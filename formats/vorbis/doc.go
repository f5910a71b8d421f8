// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Supported Formats
//
// The decoder supports:
//   - Ogg Vorbis (.ogg files)
//   - Variable bitrates
//   - Mono and stereo
//   - Various sample rates
//
// # Decoding Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	samples, sampleRate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back mono as float64 values in the range [-1.0, 1.0] at the
// stream's native sample rate. Multi-channel streams are folded to mono by
// averaging the channels.
package vorbis
