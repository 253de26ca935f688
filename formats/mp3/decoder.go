// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audxform/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Length() int64
	SampleRate() int
}

// go-mp3 always produces 16-bit little-endian stereo.
const (
	outputChannels = 2
	outputBits     = 16
)

type source struct {
	dec    mp3Reader
	format audio.Format
	pos    int64
}

func (s *source) Format() audio.Format { return s.format }

// Len is the decoded size in bytes, or -1 when the input is not seekable.
func (s *source) Len() int64 { return s.dec.Length() }

func (s *source) Read(p []byte) (int, error) {
	n, err := s.dec.Read(p)
	s.pos += int64(n)
	return n, err
}

func (s *source) Seek(offset int64, whence int) (int64, error) {
	target, err := audio.SeekTarget(offset, whence, s.pos, s.dec.Length())
	if err != nil {
		return 0, err
	}
	target -= target % int64(s.format.BlockAlign())

	pos, err := s.dec.Seek(target, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("seek mp3: %w", err)
	}
	s.pos = pos
	return pos, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Provider, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	return &source{
		dec:    dec,
		format: audio.NewPCMFormat(dec.SampleRate(), outputBits, outputChannels),
	}
}
