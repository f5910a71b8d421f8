// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// memWriteSeeker is an in-memory io.WriteSeeker for building WAV files in
// tests.
type memWriteSeeker struct {
	data []byte
	pos  int64
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if need := m.pos + int64(len(p)); need > int64(len(m.data)) {
		grown := make([]byte, need)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.pos:], p)
	m.pos += int64(n)
	return n, nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		m.pos = offset
	case io.SeekCurrent:
		m.pos += offset
	case io.SeekEnd:
		m.pos = int64(len(m.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if m.pos < 0 {
		return 0, errors.New("negative position")
	}
	return m.pos, nil
}

// readerOnly hides Seek so the non-seekable decode path is exercised.
type readerOnly struct {
	r io.Reader
}

func (r readerOnly) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func sine(freq float64, rate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	want := sine(440, 8000, 400)

	var buf memWriteSeeker
	if err := Encode(&buf, 8000, want); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, rate, err := Decoder{}.Decode(bytes.NewReader(buf.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	// One quantization step of 16-bit PCM
	const tol = 1.0 / 32767
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("sample %d = %v, want %v within %v", i, got[i], want[i], tol)
		}
	}
}

func TestDecode_NonSeekableReader(t *testing.T) {
	t.Parallel()

	want := sine(220, 8000, 100)

	var buf memWriteSeeker
	if err := Encode(&buf, 8000, want); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, rate, err := Decoder{}.Decode(readerOnly{bytes.NewReader(buf.data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rate != 8000 || len(got) != len(want) {
		t.Errorf("got %d samples at %d Hz, want %d at 8000", len(got), rate, len(want))
	}
}

func TestDecode_StereoFoldsToMono(t *testing.T) {
	t.Parallel()

	// Build a stereo file directly: left constant +0.5, right constant -0.25
	var buf memWriteSeeker
	enc := gowav.NewEncoder(&buf, 8000, 16, 2, 1)

	const frames = 64
	pcm := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 8000},
		SourceBitDepth: 16,
		Data:           make([]int, frames*2),
	}
	for i := range frames {
		pcm.Data[2*i] = 16384
		pcm.Data[2*i+1] = -8192
	}
	if err := enc.Write(pcm); err != nil {
		t.Fatalf("writing stereo fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing stereo fixture: %v", err)
	}

	got, _, err := Decoder{}.Decode(bytes.NewReader(buf.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != frames {
		t.Fatalf("len = %d, want %d", len(got), frames)
	}

	want := (0.5 + -0.25) / 2
	for i, v := range got {
		if math.Abs(v-want) > 1e-3 {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestDecode_NotWav(t *testing.T) {
	t.Parallel()

	_, _, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a RIFF stream")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestEncode_BadSampleRate(t *testing.T) {
	t.Parallel()

	var buf memWriteSeeker
	err := Encode(&buf, 0, []float64{0})
	if !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("Encode() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestEncode_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	var buf memWriteSeeker
	if err := Encode(&buf, 8000, []float64{2.0, -2.0}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, _, err := Decoder{}.Decode(bytes.NewReader(buf.data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got[0] < 0.99 || got[1] > -0.99 {
		t.Errorf("clamped samples = %v, want full scale", got)
	}
}
