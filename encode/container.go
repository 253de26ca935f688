// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audxform/audio"
)

// Container is an output file type.
type Container int

const (
	WAV Container = iota
	AIFF
)

func (c Container) String() string {
	switch c {
	case WAV:
		return "wav"
	case AIFF:
		return "aiff"
	}
	return fmt.Sprintf("container(%d)", int(c))
}

// ContainerFromPath deduces the container from the file extension.
func ContainerFromPath(path string) (Container, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return WAV, nil
	case ".aif", ".aiff":
		return AIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedContainer, filepath.Ext(path))
}

// OutputFormats lists the sample formats c can store at rate and channels,
// lowest bitrate first.
func OutputFormats(c Container, rate, channels int) []audio.Format {
	var out []audio.Format
	for _, bits := range []int{8, 16, 24, 32} {
		out = append(out, audio.NewPCMFormat(rate, bits, channels))
	}
	if c == WAV {
		out = append(out, audio.NewFloatFormat(rate, channels))
	}
	return out
}

// Bitrates returns the distinct bitrates, in bits per second, of the
// formats OutputFormats offers.
func Bitrates(c Container, rate, channels int) []int {
	var rates []int
	for _, f := range OutputFormats(c, rate, channels) {
		rates = append(rates, f.AverageBytesPerSecond()*8)
	}
	slices.Sort(rates)
	return slices.Compact(rates)
}

// SelectFormat picks the format with the bitrate closest to desired among
// those matching in's sample rate and channel count. Ties go to the format
// sharing in's encoding.
func SelectFormat(c Container, in audio.Format, desired int) (audio.Format, error) {
	if in.SampleRate <= 0 || in.Channels <= 0 {
		return audio.Format{}, fmt.Errorf("%w: %s", ErrNoMatchingFormat, in)
	}

	var (
		best  audio.Format
		delta = -1
	)
	for _, f := range OutputFormats(c, in.SampleRate, in.Channels) {
		d := abs(desired - f.AverageBytesPerSecond()*8)
		if delta < 0 || d < delta || (d == delta && f.Encoding == in.Encoding && best.Encoding != in.Encoding) {
			best, delta = f, d
		}
	}

	if delta < 0 {
		return audio.Format{}, fmt.Errorf("%w: %s", ErrNoMatchingFormat, in)
	}
	return best, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func accepts(c Container, f audio.Format) bool {
	return slices.Contains(OutputFormats(c, f.SampleRate, f.Channels), f)
}
