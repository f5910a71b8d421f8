// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"sync"
)

// Decoder turns an encoded audio stream into mono samples in [-1, 1] at the
// stream's native sample rate.
type Decoder interface {
	Decode(r io.Reader) (samples []float64, sampleRate int, err error)
}

// Registry maps format keys ("wav", "mp3", "ogg", "aiff") to decoders for
// file-based signal sources.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
