// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Provider is a pull source of interleaved audio bytes in a fixed format.
type Provider interface {
	// Format of the bytes returned by Read.
	Format() Format
	// Read fills p with up to len(p) bytes. A return of n == 0 with err == nil
	// or err == io.EOF means the provider is exhausted.
	Read(p []byte) (n int, err error)
}

// Seeker is implemented by providers that can change their read position.
// Offsets are byte offsets into the provider's own format.
type Seeker interface {
	Seek(offset int64, whence int) (int64, error)
}

// Lengther is implemented by providers that know their total size in bytes.
type Lengther interface {
	Len() int64
}

// Decoder constructs a Provider from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Provider, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder
	mtx    *sync.Mutex
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

// Formats returns the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SeekTarget resolves a Seek request against the current position and the
// total size, both in bytes.
func SeekTarget(offset int64, whence int, current, size int64) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = current + offset
	case io.SeekEnd:
		next = size + offset
	default:
		return 0, ErrInvalidWhence
	}

	if next < 0 {
		return 0, ErrNegativePosition
	}
	return next, nil
}

// IsExhausted reports whether a Read result signals the end of a provider.
func IsExhausted(n int, err error) bool {
	return n == 0 && (err == nil || err == io.EOF)
}
