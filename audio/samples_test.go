// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"math"
	"testing"
)

func TestSamples_RoundTrip(t *testing.T) {
	t.Parallel()

	input := []float32{0, 0.25, -0.25, 0.5, -0.5, 0.9, -0.9}

	tests := []struct {
		name      string
		format    Format
		tolerance float64
	}{
		{"pcm8", NewPCMFormat(8000, 8, 1), 0.01},
		{"pcm16", NewPCMFormat(8000, 16, 1), 0.0001},
		{"pcm24", NewPCMFormat(8000, 24, 1), 0.000001},
		{"pcm32", NewPCMFormat(8000, 32, 1), 0.000001},
		{"float32", NewFloatFormat(8000, 1), 0},
		{"float64", Format{Encoding: EncodingIEEEFloat, SampleRate: 8000, Channels: 1, BitsPerSample: 64}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := make([]byte, len(input)*tt.format.BytesPerSample())
			written := EncodeSamples(buf, input, tt.format)
			if written != len(buf) {
				t.Fatalf("EncodeSamples() = %d bytes, want %d", written, len(buf))
			}

			out := make([]float32, len(input))
			n := DecodeSamples(out, buf, tt.format)
			if n != len(input) {
				t.Fatalf("DecodeSamples() = %d samples, want %d", n, len(input))
			}

			for i := range input {
				if diff := math.Abs(float64(out[i] - input[i])); diff > tt.tolerance {
					t.Errorf("sample %d = %v, want %v (diff %v)", i, out[i], input[i], diff)
				}
			}
		})
	}
}

func TestSamples_PCMBytesExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		data []byte
	}{
		// min, -1, 0, 1, mid, max
		{"pcm8", 8, []byte{0x00, 0x7f, 0x80, 0x81, 0xc0, 0xff}},
		{"pcm16", 16, []byte{0x00, 0x80, 0xff, 0xff, 0x00, 0x00, 0x01, 0x00, 0x00, 0x40, 0xff, 0x7f}},
		{"pcm24", 24, []byte{
			0x00, 0x00, 0x80, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00,
			0x01, 0x00, 0x00, 0x40, 0xe2, 0x01, 0xff, 0xff, 0x7f,
		}},
		{"pcm32", 32, []byte{
			0x00, 0x00, 0x00, 0x80, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00,
			0x01, 0x00, 0x00, 0x00, 0x00, 0x56, 0x34, 0x12, 0xff, 0xff, 0xff, 0x7f,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewPCMFormat(8000, tt.bits, 1)
			samples := make([]float32, len(tt.data)/f.BytesPerSample())
			DecodeSamples(samples, tt.data, f)

			got := make([]byte, len(tt.data))
			EncodeSamples(got, samples, f)
			if !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = % x, want % x", got, tt.data)
			}
		})
	}
}

func TestEncodeSamples_Clamps(t *testing.T) {
	t.Parallel()

	f := NewPCMFormat(8000, 16, 1)
	buf := make([]byte, 4)
	EncodeSamples(buf, []float32{3, -3}, f)

	out := make([]float32, 2)
	DecodeSamples(out, buf, f)
	if out[0] < 0.999 || out[1] > -0.999 {
		t.Errorf("clamped samples = %v, want ≈[1 -1]", out)
	}
}

func TestDecodeSamples_PartialSample(t *testing.T) {
	t.Parallel()

	// three bytes of 16-bit audio hold one whole sample
	out := make([]float32, 4)
	if n := DecodeSamples(out, []byte{0, 0x40, 0xff}, NewPCMFormat(8000, 16, 1)); n != 1 {
		t.Errorf("DecodeSamples() = %d, want 1", n)
	}
	if out[0] != 0.5 {
		t.Errorf("out[0] = %v, want 0.5", out[0])
	}
}

func BenchmarkDecodeSamples16(b *testing.B) {
	f := NewPCMFormat(44100, 16, 2)
	src := make([]byte, f.AverageBytesPerSecond())
	dst := make([]float32, len(src)/2)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		DecodeSamples(dst, src, f)
	}
}
