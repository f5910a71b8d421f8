// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// It provides a simple interface for reading MP3 audio as PCM samples.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	samples, sampleRate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// go-mp3 always emits stereo 16-bit PCM; the decoder averages the two
// channels, so samples come back mono as float64 values in the range
// [-1.0, 1.0] at the file's native sample rate (typically 44.1kHz or
// 48kHz).
package mp3
