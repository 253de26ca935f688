// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audxform/audio"
)

type source struct {
	dec    *wav.Decoder
	data   io.Reader
	format audio.Format
	size   int64 // whole frames in the data chunk, in bytes
	pos    int64
}

func (s *source) Format() audio.Format { return s.format }
func (s *source) Len() int64           { return s.size }

func (s *source) Read(p []byte) (int, error) {
	n, err := s.data.Read(p)
	s.pos += int64(n)
	return n, err
}

// Seek moves to a byte offset inside the sample data, rounded down to a
// whole frame.
func (s *source) Seek(offset int64, whence int) (int64, error) {
	target, err := audio.SeekTarget(offset, whence, s.pos, s.size)
	if err != nil {
		return 0, err
	}
	target = min(target, s.size)
	target -= target % int64(s.format.BlockAlign())

	if err := s.dec.Rewind(); err != nil {
		return 0, fmt.Errorf("rewind wav: %w", err)
	}
	if _, err := s.dec.Seek(target, io.SeekCurrent); err != nil {
		return 0, fmt.Errorf("seek wav data: %w", err)
	}

	s.data = io.LimitReader(s.dec.PCMChunk, s.size-target)
	s.pos = target
	return target, nil
}

type Decoder struct{}

// Decode parses the WAV header and returns a provider over the raw sample
// data. Inputs that are not seekable are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Provider, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format, err := formatOf(dec)
	if err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return nil, ErrMissingData
	}

	size := int64(dec.PCMSize)
	size -= size % int64(format.BlockAlign())

	return &source{
		dec:    dec,
		data:   io.LimitReader(dec.PCMChunk, size),
		format: format,
		size:   size,
	}, nil
}

func formatOf(dec *wav.Decoder) (audio.Format, error) {
	f := audio.Format{
		Encoding:      audio.Encoding(dec.WavAudioFormat),
		SampleRate:    int(dec.SampleRate),
		Channels:      int(dec.NumChans),
		BitsPerSample: int(dec.BitDepth),
	}

	if err := f.Validate(); err != nil {
		return audio.Format{}, fmt.Errorf("%w: %s: %w", ErrUnsupportedWavFormat, f, err)
	}
	return f, nil
}
