// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Encoding identifies how samples are stored in a byte stream.
// The values match the WAVE format tags.
type Encoding uint16

const (
	EncodingUnknown    Encoding = 0x0000
	EncodingPCM        Encoding = 0x0001
	EncodingADPCM      Encoding = 0x0002
	EncodingIEEEFloat  Encoding = 0x0003
	EncodingALaw       Encoding = 0x0006
	EncodingMuLaw      Encoding = 0x0007
	EncodingExtensible Encoding = 0xFFFE
)

func (e Encoding) String() string {
	switch e {
	case EncodingPCM:
		return "pcm"
	case EncodingADPCM:
		return "adpcm"
	case EncodingIEEEFloat:
		return "float"
	case EncodingALaw:
		return "alaw"
	case EncodingMuLaw:
		return "mulaw"
	case EncodingExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("encoding(0x%04x)", uint16(e))
	}
}

// Format describes an interleaved audio byte stream.
type Format struct {
	Encoding      Encoding
	SampleRate    int // frames per second
	Channels      int
	BitsPerSample int
}

// NewPCMFormat returns an integer PCM format.
func NewPCMFormat(sampleRate, bitsPerSample, channels int) Format {
	return Format{
		Encoding:      EncodingPCM,
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: bitsPerSample,
	}
}

// NewFloatFormat returns a 32-bit IEEE float format.
func NewFloatFormat(sampleRate, channels int) Format {
	return Format{
		Encoding:      EncodingIEEEFloat,
		SampleRate:    sampleRate,
		Channels:      channels,
		BitsPerSample: 32,
	}
}

// BytesPerSample is the size of one sample of one channel.
func (f Format) BytesPerSample() int { return f.BitsPerSample / 8 }

// BlockAlign is the size of one frame (one sample for every channel).
func (f Format) BlockAlign() int { return f.Channels * f.BytesPerSample() }

// AverageBytesPerSecond is the byte rate of the stream.
func (f Format) AverageBytesPerSecond() int { return f.SampleRate * f.BlockAlign() }

// IsPCMOrIEEEFloat reports whether samples are plain integer PCM or IEEE float,
// the only encodings transforms accept.
func (f Format) IsPCMOrIEEEFloat() bool {
	return f.Encoding == EncodingPCM || f.Encoding == EncodingIEEEFloat
}

// Validate checks that the format is internally consistent and uses a sample
// layout the sample codec can handle.
func (f Format) Validate() error {
	if !f.IsPCMOrIEEEFloat() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.Encoding)
	}

	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, f)
	}

	switch f.Encoding {
	case EncodingPCM:
		switch f.BitsPerSample {
		case 8, 16, 24, 32:
		default:
			return fmt.Errorf("%w: %d-bit pcm", ErrUnsupportedFormat, f.BitsPerSample)
		}
	case EncodingIEEEFloat:
		switch f.BitsPerSample {
		case 32, 64:
		default:
			return fmt.Errorf("%w: %d-bit float", ErrUnsupportedFormat, f.BitsPerSample)
		}
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%s %dHz %dch %dbit", f.Encoding, f.SampleRate, f.Channels, f.BitsPerSample)
}
