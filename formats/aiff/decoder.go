package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads a whole AIFF stream into mono samples in [-1, 1].
// Multi-channel files are folded to mono by averaging the channels.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) ([]float64, int, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek; buffer non-seekable streams in memory
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, 0, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, 0, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, 0, ErrUnsupportedAiffLayout
	}

	return decode(dec, format.NumChannels, int(dec.BitDepth), format.SampleRate)
}

func decode(dec aiffReader, channels, bitDepth, sampleRate int) ([]float64, int, error) {
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

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*channels),
		Format: dec.Format(),
	}

	var data []int
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			data = append(data, buf.Data[:n]...)
		}
		if err != nil && err != io.EOF {
			return nil, 0, fmt.Errorf("%w", err)
		}
		if err == io.EOF || n == 0 {
			break
		}
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

	return out, sampleRate, nil
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
