// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/pcm"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved values and returns how many it wrote.
	Read(p []float32) (int, error)
	SetPosition(pos int64) error
	Length() int64
}

type source struct {
	dec     oggReader
	format  audio.Format
	pending pcm.Buffer
	floats  []float32
	pos     int64
}

func (s *source) Format() audio.Format { return s.format }

func (s *source) Len() int64 { return s.dec.Length() * int64(s.format.BlockAlign()) }

func (s *source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if s.pending.Len() == 0 {
		if err := s.decode(len(p)); err != nil {
			return 0, err
		}
	}

	n := s.pending.Read(p)
	s.pos += int64(n)
	return n, nil
}

// decode reads at least one frame, and about size bytes, into pending.
func (s *source) decode(size int) error {
	channels := s.format.Channels
	values := max(size/s.format.BytesPerSample(), channels)
	values -= values % channels

	if cap(s.floats) < values {
		s.floats = make([]float32, values)
	}
	s.floats = s.floats[:values]

	n, err := s.dec.Read(s.floats)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return err
	}

	buf := s.pending.Grow(n * s.format.BytesPerSample())
	audio.EncodeSamples(buf, s.floats[:n], s.format)
	return nil
}

// Seek moves to the frame containing the byte offset.
func (s *source) Seek(offset int64, whence int) (int64, error) {
	target, err := audio.SeekTarget(offset, whence, s.pos, s.Len())
	if err != nil {
		return 0, err
	}

	frame := target / int64(s.format.BlockAlign())
	if err := s.dec.SetPosition(frame); err != nil {
		return 0, fmt.Errorf("seek vorbis to frame %d: %w", frame, err)
	}

	s.pending.Reset()
	s.pos = frame * int64(s.format.BlockAlign())
	return s.pos, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Provider, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis: %w", err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:    dec,
		format: audio.NewFloatFormat(dec.SampleRate(), dec.Channels()),
	}
}
