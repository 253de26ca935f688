// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
	"github.com/ik5/audxform/formats"
	"github.com/ik5/audxform/stream"
	"github.com/ik5/audxform/transform"
)

type ConvertCmd struct {
	In  string `arg:"" type:"existingfile" help:"Input audio file."`
	Out string `arg:"" help:"Output file, .wav or .aiff."`

	Rate     int           `short:"r" help:"Output sample rate, the source rate when 0."`
	Channels int           `short:"c" help:"Output channels, the source channels when 0."`
	Bits     int           `short:"b" help:"Output bits per sample, picked from the source when 0."`
	Float    bool          `short:"f" help:"Write 32-bit IEEE float samples (WAV only)."`
	Start    time.Duration `short:"s" help:"Skip this much of the source."`
}

// outputFormat applies the flags to the source format and settles on a
// format the container can hold.
func (c *ConvertCmd) outputFormat(src audio.Format, container encode.Container) (audio.Format, error) {
	rate, channels := src.SampleRate, src.Channels
	if c.Rate > 0 {
		rate = c.Rate
	}
	if c.Channels > 0 {
		channels = c.Channels
	}

	want := src
	switch {
	case c.Float:
		want = audio.NewFloatFormat(rate, channels)
	case c.Bits > 0:
		want = audio.NewPCMFormat(rate, c.Bits, channels)
	default:
		want.SampleRate, want.Channels = rate, channels
	}

	out, err := encode.SelectFormat(container, want, want.AverageBytesPerSecond()*8)
	if err != nil {
		return audio.Format{}, err
	}
	if (c.Float || c.Bits > 0) && out != want {
		return audio.Format{}, fmt.Errorf("%w: %s into %s", encode.ErrUnsupportedInput, want, container)
	}
	return out, nil
}

func (c *ConvertCmd) Run(g *Globals, ctx context.Context) error {
	container, err := encode.ContainerFromPath(c.Out)
	if err != nil {
		return err
	}

	factory, err := transform.NewResamplerFactory(g.Quality)
	if err != nil {
		return err
	}

	in, err := formats.Open(c.In)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := c.outputFormat(in.Format(), container)
	if err != nil {
		return err
	}

	r, err := stream.NewReader(in, out, factory,
		stream.WithChunkDuration(g.ChunkDuration()),
		stream.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("convert %s: %w", c.In, err)
	}
	defer r.Close()

	if c.Start > 0 {
		if err := r.SetPosition(audio.RefTime(c.Start / 100)); err != nil {
			return fmt.Errorf("seek %s to %v: %w", c.In, c.Start, err)
		}
	}

	if err := encode.EncodeFile(c.Out, r); err != nil {
		return err
	}

	input, output := r.Positions()
	logger.Tf(ctx, "convert %v (%v) -> %v (%v), read %v wrote %v",
		c.In, in.Format(), c.Out, out, input.Duration(), output.Duration())
	return nil
}
