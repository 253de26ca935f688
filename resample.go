// SPDX-License-Identifier: EPL-2.0

package audxform

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
	"github.com/ik5/audxform/formats"
	"github.com/ik5/audxform/stream"
	"github.com/ik5/audxform/transform"
)

// Resample returns a reader serving src at targetRate with the resampler at
// the given quality. The sample encoding is kept; sources with more than
// two channels are folded down to stereo.
func Resample(src audio.Provider, targetRate, quality int, opts ...stream.Option) (*stream.Reader, error) {
	factory, err := transform.NewResamplerFactory(quality)
	if err != nil {
		return nil, err
	}

	out := src.Format()
	out.SampleRate = targetRate
	out.Channels = min(out.Channels, 2)

	return stream.NewReader(src, out, factory, opts...)
}

// Convert returns a reader serving src in the out format, using the
// cheapest built-in transform that can do it.
func Convert(src audio.Provider, out audio.Format, opts ...stream.Option) (*stream.Reader, error) {
	return stream.NewReader(src, out, transform.Auto, opts...)
}

// ResampleToMono16 converts src to mono 16-bit PCM at targetRate and
// collects every sample.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, err := audxform.ResampleToMono16(src, 8000)
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Provider, targetRate int) ([]int16, error) {
	r, err := Convert(src, audio.NewPCMFormat(targetRate, 16, 1))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("resample to mono16: %w", err)
	}

	pcm16 := make([]int16, len(data)/2)
	for i := range pcm16 {
		pcm16[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return pcm16, nil
}

// Transcode decodes inPath, converts it to out and writes it to outPath in
// the container named by its extension.
func Transcode(inPath, outPath string, out audio.Format, opts ...stream.Option) error {
	in, err := formats.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := Convert(in, out, opts...)
	if err != nil {
		return fmt.Errorf("convert %s: %w", inPath, err)
	}
	defer r.Close()

	return encode.EncodeFile(outPath, r)
}
