// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads a whole MP3 stream into mono samples in [-1, 1]. go-mp3
// always emits 16-bit little-endian stereo PCM, so the two channels are
// averaged.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) ([]float64, int, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return decode(dec)
}

func decode(dec mp3Reader) ([]float64, int, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	// 4 bytes per frame: interleaved left and right int16
	frames := len(pcm) / 4
	out := make([]float64, frames)
	for i := range out {
		left := int16(uint16(pcm[4*i]) | uint16(pcm[4*i+1])<<8)
		right := int16(uint16(pcm[4*i+2]) | uint16(pcm[4*i+3])<<8)
		out[i] = (float64(left) + float64(right)) / (2 * 32768.0)
	}

	return out, dec.SampleRate(), nil
}
