// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	samples, sampleRate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back mono as float64 values in the range [-1.0, 1.0] at the
// file's native sample rate. Multi-channel files are folded to mono by
// averaging the channels.
//
// # Error Handling
//
// The package defines two error types:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
package aiff
