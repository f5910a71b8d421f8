// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package supports reading WAV files of any PCM bit depth and writing
// mono PCM 16-bit files. It uses the github.com/go-audio libraries for
// robust WAV file handling.
//
// # Decoding WAV Files
//
// The Decoder reads a whole stream into memory:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	samples, sampleRate, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Samples come back mono as float64 values in the range [-1.0, 1.0], at the
// file's native sample rate. Multi-channel files are folded to mono by
// averaging the channels.
//
// # Writing WAV Files
//
// Use Encode to create WAV files:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, 16000, samples)
//
// The output is always mono 16-bit PCM; float samples are clamped to
// [-1.0, 1.0] before quantization.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//   - ErrInvalidSampleRate: Encode was given a non-positive sample rate
//
// Example:
//
//	samples, rate, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
