package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder reads a whole Ogg Vorbis stream into mono samples in [-1, 1].
// Multi-channel streams are folded to mono by averaging the channels.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) ([]float64, int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	return decode(dec)
}

func decode(dec oggReader) ([]float64, int, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, 0, fmt.Errorf("vorbis stream reports %d channels", channels)
	}

	// The reader hands back interleaved float32 values; the count is always
	// a whole number of frames.
	var interleaved []float32
	buf := make([]float32, 4096*channels)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for i := range out {
		var sum float64
		for c := range channels {
			sum += float64(interleaved[i*channels+c])
		}
		out[i] = sum / float64(channels)
	}

	return out, dec.SampleRate(), nil
}
