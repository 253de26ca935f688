// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/pcm"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream  frameParser
	reopen  func() (frameParser, error)
	format  audio.Format
	shift   int   // container bits minus stream bits
	frames  int64 // 0 when the header does not say
	pending pcm.Buffer
	pos     int64
}

func (s *source) Format() audio.Format { return s.format }

// Len is the decoded size in bytes, or 0 when the stream does not record
// its sample count.
func (s *source) Len() int64 { return s.frames * int64(s.format.BlockAlign()) }

func (s *source) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for s.pending.Len() == 0 {
		if err := s.decode(); err != nil {
			return 0, err
		}
	}

	n := s.pending.Read(p)
	s.pos += int64(n)
	return n, nil
}

// decode parses the next FLAC frame into pending.
func (s *source) decode() error {
	fr, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	channels := s.format.Channels
	if len(fr.Subframes) < channels {
		return fmt.Errorf("%w: %d subframes for %d channels", ErrMalformedFrame, len(fr.Subframes), channels)
	}

	bits := s.format.BitsPerSample
	width := s.format.BytesPerSample()
	n := int(fr.BlockSize)
	buf := s.pending.Grow(n * channels * width)

	off := 0
	for i := range n {
		for ch := range channels {
			pcm.PutSample(buf[off:], fr.Subframes[ch].Samples[i]<<s.shift, bits)
			off += width
		}
	}
	return nil
}

// Seek restarts the stream and decodes forward to the frame containing the
// offset. FLAC frames are variable length, so there is no shortcut.
func (s *source) Seek(offset int64, whence int) (int64, error) {
	target, err := audio.SeekTarget(offset, whence, s.pos, s.Len())
	if err != nil {
		return 0, err
	}
	if s.frames > 0 {
		target = min(target, s.Len())
	}
	align := int64(s.format.BlockAlign())
	target -= target % align

	stream, err := s.reopen()
	if err != nil {
		return 0, fmt.Errorf("rewind flac: %w", err)
	}
	s.stream = stream
	s.pending.Reset()
	s.pos = 0

	for s.pos < target {
		if err := s.decode(); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("skip flac frames: %w", err)
		}

		skip := min(int64(s.pending.Len()), target-s.pos)
		s.pending.Skip(int(skip))
		s.pos += skip
	}

	return s.pos, nil
}

type Decoder struct{}

// Decode parses the FLAC stream info and returns a provider of
// little-endian PCM. Sample depths that are not a whole number of bytes are
// widened to the next byte and shifted up.
func (Decoder) Decode(r io.Reader) (audio.Provider, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading flac data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("reading flac data: %w", err)
	}

	stream, err := flac.New(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	bits := int(info.BitsPerSample)
	container := pcm.ContainerBits(bits)

	f := audio.NewPCMFormat(int(info.SampleRate), container, int(info.NChannels))
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFlacFormat, err)
	}

	return &source{
		stream: stream,
		format: f,
		shift:  container - bits,
		frames: int64(info.NSamples),
		reopen: func() (frameParser, error) {
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return nil, err
			}
			return flac.New(rs)
		},
	}, nil
}
