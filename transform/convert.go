// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

// Converter changes sample encoding, bit depth and channel count at a fixed
// sample rate. Each input chunk produces at most one output chunk.
type Converter struct {
	lifecycle
	in, out  audio.Format
	frames   frameReader
	position int64 // output frames since the last flush
}

func NewConverter(in, out audio.Format) (*Converter, error) {
	if err := validateFormats(in, out); err != nil {
		return nil, err
	}
	if in.SampleRate != out.SampleRate {
		return nil, fmt.Errorf("converter %s -> %s: %w", in, out, ErrUnsupportedConversion)
	}

	return &Converter{
		in:     in,
		out:    out,
		frames: frameReader{in: in, outCh: out.Channels},
	}, nil
}

func (c *Converter) ProcessMessage(m Message) error {
	flush, err := c.message(m)
	if flush {
		c.frames.reset()
		c.position = 0
	}
	return err
}

func (c *Converter) ProcessInput(s Sample) error {
	if err := c.checkInput(); err != nil {
		return err
	}

	mixed := c.frames.frames(s.Data)
	if len(mixed) == 0 {
		return nil
	}

	data := make([]byte, len(mixed)*c.out.BytesPerSample())
	audio.EncodeSamples(data, mixed, c.out)

	frames := int64(len(mixed) / c.out.Channels)
	c.push(Sample{
		Data:     data,
		Time:     framesToRefTime(c.position, c.out.SampleRate),
		Duration: framesToRefTime(frames, c.out.SampleRate),
	})
	c.position += frames

	return nil
}

func (c *Converter) ProcessOutput() (Result, error) { return c.pop() }

func (c *Converter) Close() error {
	c.close()
	return nil
}
