// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/pcm"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder and serves little-endian PCM.
type source struct {
	dec     aiffReader
	reopen  func() (aiffReader, error)
	format  audio.Format
	frames  int64
	ints    *goaudio.IntBuffer
	pending pcm.Buffer
	pos     int64
}

func (s *source) Format() audio.Format { return s.format }
func (s *source) Len() int64           { return s.frames * int64(s.format.BlockAlign()) }

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

// fill reads up to values samples from the decoder into s.ints.
func (s *source) fill(values int) (int, error) {
	if s.ints == nil || cap(s.ints.Data) < values {
		s.ints = &goaudio.IntBuffer{
			Data:   make([]int, values),
			Format: s.dec.Format(),
		}
	}
	s.ints.Data = s.ints.Data[:values]

	n, err := s.dec.PCMBuffer(s.ints)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return n, nil
}

func (s *source) decode(size int) error {
	channels := s.format.Channels
	width := s.format.BytesPerSample()
	values := max(size/width, channels)
	values -= values % channels

	n, err := s.fill(values)
	if err != nil {
		return err
	}

	buf := s.pending.Grow(n * width)
	for i, v := range s.ints.Data[:n] {
		pcm.PutSample(buf[i*width:], int32(v), s.format.BitsPerSample)
	}
	return nil
}

// Seek reopens the file and skips to the frame containing the offset.
func (s *source) Seek(offset int64, whence int) (int64, error) {
	target, err := audio.SeekTarget(offset, whence, s.pos, s.Len())
	if err != nil {
		return 0, err
	}
	align := int64(s.format.BlockAlign())
	target = min(target, s.Len())
	target -= target % align

	dec, err := s.reopen()
	if err != nil {
		return 0, fmt.Errorf("rewind aiff: %w", err)
	}
	s.dec = dec
	s.ints = nil
	s.pending.Reset()
	s.pos = 0

	skip := int(target/align) * s.format.Channels
	for skip > 0 {
		n, err := s.fill(min(skip, 4096*s.format.Channels))
		if err != nil {
			return 0, fmt.Errorf("skip aiff samples: %w", err)
		}
		skip -= n
	}

	s.pos = target
	return target, nil
}

type Decoder struct{}

// Decode reads the AIFF header and returns a provider of little-endian PCM
// at the file's own bit depth. Inputs that are not seekable are read into
// memory first.
func (Decoder) Decode(r io.Reader) (audio.Provider, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	bits := int(dec.BitDepth)
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAiffFormat, bits)
	}

	f := audio.NewPCMFormat(format.SampleRate, bits, format.NumChannels)
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return &source{
		dec:    dec,
		format: f,
		frames: int64(dec.NumSampleFrames),
		reopen: func() (aiffReader, error) {
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return nil, err
			}
			return open(rs)
		},
	}, nil
}

func open(rs io.ReadSeeker) (*aiff.Decoder, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	return dec, nil
}
