// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audxform/audio"
)

// MockSource is a test helper that generates audio bytes in a fixed format.
// It implements audio.Provider.
type MockSource struct {
	format      audio.Format
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) float32
	tmp         []float32
}

// NewMockSource creates a new mock audio source.
// waveform generates sample values given the frame index and channel.
func NewMockSource(f audio.Format, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		format:      f,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(f audio.Format, totalFrames int) *MockSource {
	return NewMockSource(f, totalFrames, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a sine wave on every channel.
func NewSineSource(f audio.Format, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(f, totalFrames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(f.SampleRate)
		return float32(0.5 * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(f audio.Format, totalFrames int, value float32) *MockSource {
	return NewMockSource(f, totalFrames, func(int, int) float32 { return value })
}

func (m *MockSource) Format() audio.Format { return m.format }

// Reset rewinds the source to the first frame.
func (m *MockSource) Reset() { m.generated = 0 }

// Read fills p with whole frames only.
func (m *MockSource) Read(p []byte) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	channels := m.format.Channels
	frames := min(len(p)/m.format.BlockAlign(), m.totalFrames-m.generated)

	if cap(m.tmp) < frames*channels {
		m.tmp = make([]float32, frames*channels)
	}
	samples := m.tmp[:frames*channels]

	for frame := range frames {
		for ch := range channels {
			samples[frame*channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames
	return audio.EncodeSamples(p, samples, m.format), nil
}

// Render returns every frame the waveform generates, encoded in f.
func Render(f audio.Format, totalFrames int, waveform func(frame int, channel int) float32) []byte {
	out := make([]byte, totalFrames*f.BlockAlign())
	n, _ := NewMockSource(f, totalFrames, waveform).Read(out)
	return out[:n]
}

// Sequence returns n bytes counting up from zero, wrapping at 256.
func Sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// ScriptedSource returns the configured chunks one per Read call.
type ScriptedSource struct {
	format audio.Format
	chunks [][]byte
	// EOFWithLast returns io.EOF together with the final chunk.
	EOFWithLast bool
	// Err is returned once the chunks run out, instead of io.EOF.
	Err error

	Reads int
}

func NewScriptedSource(f audio.Format, chunks ...[]byte) *ScriptedSource {
	return &ScriptedSource{format: f, chunks: chunks}
}

func (s *ScriptedSource) Format() audio.Format { return s.format }

func (s *ScriptedSource) Read(p []byte) (int, error) {
	s.Reads++

	if len(s.chunks) == 0 {
		if s.Err != nil {
			return 0, s.Err
		}
		return 0, io.EOF
	}

	n := copy(p, s.chunks[0])
	if n < len(s.chunks[0]) {
		s.chunks[0] = s.chunks[0][n:]
		return n, nil
	}

	s.chunks = s.chunks[1:]
	if len(s.chunks) == 0 && s.EOFWithLast {
		return n, io.EOF
	}
	return n, nil
}
