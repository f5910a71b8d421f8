package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
)

// Decoder reads a whole WAV stream into mono samples in [-1, 1].
// Multi-channel files are folded to mono by averaging the channels.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) ([]float64, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek; buffer non-seekable streams in memory
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading wav data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, 0, ErrUnsupportedWavLayout
	}

	samples := fold(buf.Data, buf.Format.NumChannels, int(dec.BitDepth))
	return samples, buf.Format.SampleRate, nil
}

// fold averages interleaved integer frames into normalized mono samples.
func fold(data []int, channels, bitDepth int) []float64 {
	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	frames := len(data) / channels
	out := make([]float64, frames)
	for i := range out {
		var sum float64
		for c := range channels {
			sum += float64(data[i*channels+c])
		}
		out[i] = sum / (float64(channels) * maxVal)
	}
	return out
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
