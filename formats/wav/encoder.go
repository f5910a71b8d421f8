// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/roomscene/utils"
)

// Encode writes samples as a mono 16-bit PCM WAV at sampleRate. Values
// outside [-1, 1] are clamped to full scale.
func Encode(w io.WriteSeeker, sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := gowav.NewEncoder(w, sampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, v := range samples {
		buf.Data[i] = int(utils.FloatToInt16(v))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	return enc.Close()
}
