// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/utils"
)

// bufferSeconds is how much audio Encode reads per write.
const bufferSeconds = 4

const (
	wavPCM       = 1
	wavIEEEFloat = 3
)

// sampleWriter is the part of the go-audio encoders Encode uses.
type sampleWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

func newWriter(w io.WriteSeeker, c Container, f audio.Format) sampleWriter {
	if c == AIFF {
		return aiff.NewEncoder(w, f.SampleRate, f.BitsPerSample, f.Channels)
	}

	tag := wavPCM
	if f.Encoding == audio.EncodingIEEEFloat {
		tag = wavIEEEFloat
	}
	return wav.NewEncoder(w, f.SampleRate, f.BitsPerSample, f.Channels, tag)
}

// Encode reads src until it is exhausted and writes it to w as container c.
// The source format must be one OutputFormats offers for c.
func Encode(w io.WriteSeeker, c Container, src audio.Provider) error {
	return EncodeContext(context.Background(), w, c, src)
}

// EncodeContext is Encode with a context for log messages.
func EncodeContext(ctx context.Context, w io.WriteSeeker, c Container, src audio.Provider) error {
	ctx = logger.WithContext(ctx)

	f := src.Format()
	if !f.IsPCMOrIEEEFloat() || !accepts(c, f) {
		return fmt.Errorf("%w: %s into %s", ErrUnsupportedInput, f, c)
	}

	enc := newWriter(w, c, f)
	align := f.BlockAlign()
	size := max(bufferSeconds*f.AverageBytesPerSecond()/align, 1) * align

	buf := make([]byte, size)
	ints := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		SourceBitDepth: f.BitsPerSample,
	}

	var total int64
	filled := 0
	for {
		n, err := src.Read(buf[filled:])
		filled += n
		if err != nil && err != io.EOF {
			enc.Close()
			return fmt.Errorf("reading %s source: %w", c, err)
		}
		done := n == 0 || err == io.EOF

		if whole := filled - filled%align; whole > 0 && (done || filled == len(buf)) {
			ints.Data = toInts(ints.Data[:0], buf[:whole], f, c)
			if err := enc.Write(ints); err != nil {
				enc.Close()
				return fmt.Errorf("writing %s samples: %w", c, err)
			}
			total += int64(whole)
			filled = copy(buf, buf[whole:filled])
		}

		if done {
			break
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing %s: %w", c, err)
	}

	if filled > 0 {
		logger.Wf(ctx, "encode %v: dropped %v bytes of a partial frame", c, filled)
	}
	logger.Tf(ctx, "encode %v: %v, %v bytes, %v", c, f, total, audio.BytesToRefTime(int(total), f).Duration())
	return nil
}

// toInts widens little-endian samples to the ints go-audio encoders take.
// WAV stores 8-bit samples unsigned and AIFF signed.
func toInts(dst []int, src []byte, f audio.Format, c Container) []int {
	width := f.BytesPerSample()
	for off := 0; off+width <= len(src); off += width {
		var v int
		switch width {
		case 1:
			v = int(src[off])
			if c == AIFF {
				v -= 128
			}
		case 2:
			v = int(int16(binary.LittleEndian.Uint16(src[off:])))
		case 3:
			v = int(utils.Int24LE(src[off:]))
		case 4:
			// float samples keep their bit pattern
			v = int(int32(binary.LittleEndian.Uint32(src[off:])))
		}
		dst = append(dst, v)
	}
	return dst
}

// EncodeFile writes src to path in the container its extension names. The
// file is removed when encoding fails.
func EncodeFile(path string, src audio.Provider) error {
	c, err := ContainerFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Encode(file, c, src); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}
