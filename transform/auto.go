// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

// Auto picks the cheapest built-in transform for the pair of formats:
// Passthrough when they match, Converter when only encoding or channels
// differ, and a Resampler at DefaultQuality otherwise.
func Auto(in, out audio.Format) (Transform, error) {
	return autoWithQuality(in, out, DefaultQuality)
}

// NewResamplerFactory returns a Factory like Auto whose resampler runs at
// the given quality.
func NewResamplerFactory(quality int) (Factory, error) {
	if quality < MinQuality || quality > MaxQuality {
		return nil, fmt.Errorf("quality %d: %w", quality, ErrQualityOutOfRange)
	}

	return func(in, out audio.Format) (Transform, error) {
		return autoWithQuality(in, out, quality)
	}, nil
}

func autoWithQuality(in, out audio.Format, quality int) (Transform, error) {
	switch {
	case in == out:
		return NewPassthrough(in, out)
	case in.SampleRate == out.SampleRate:
		return NewConverter(in, out)
	default:
		return NewResampler(in, out, quality)
	}
}
