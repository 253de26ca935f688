// SPDX-License-Identifier: EPL-2.0

package audxform

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
	"github.com/ik5/audxform/formats"
	"github.com/ik5/audxform/internal/audiotest"
	"github.com/ik5/audxform/transform"
)

func TestMain(m *testing.M) {
	logger.Switch(io.Discard)
	os.Exit(m.Run())
}

func TestResampleToMono16_Basic(t *testing.T) {
	t.Parallel()

	// 1 second of stereo audio at 44.1kHz
	src := audiotest.NewSineSource(audio.NewPCMFormat(44100, 16, 2), 44100, 440.0)

	pcm16, err := ResampleToMono16(src, 8000)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	// Should have approximately 8000 samples (1 second at 8kHz, mono)
	expected := 8000
	tolerance := 200
	if len(pcm16) < expected-tolerance || len(pcm16) > expected+tolerance {
		t.Errorf("ResampleToMono16() got %d samples, want ≈%d (±%d)",
			len(pcm16), expected, tolerance)
	}
}

func TestResampleToMono16_AlreadyMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(audio.NewFloatFormat(16000, 1), 16000, 0.5)

	pcm16, err := ResampleToMono16(src, 8000)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if len(pcm16) < 7800 || len(pcm16) > 8200 {
		t.Errorf("ResampleToMono16() got %d samples, want ≈8000", len(pcm16))
	}

	// the resampler needs a few samples to settle at the edges
	for i, s := range pcm16[100 : len(pcm16)-100] {
		if math.Abs(float64(s)-16383) > 1000 {
			t.Errorf("pcm16[%d] = %d, want ≈16383", i+100, s)
			break
		}
	}
}

func TestResampleToMono16_Silence(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(audio.NewPCMFormat(44100, 16, 2), 44100)

	pcm16, err := ResampleToMono16(src, 8000)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	for i, s := range pcm16 {
		if s != 0 {
			t.Errorf("pcm16[%d] = %d, want 0 (silence)", i, s)
			break
		}
	}
}

func TestResampleToMono16_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(audio.NewPCMFormat(44100, 16, 2), 0)

	pcm16, err := ResampleToMono16(src, 8000)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}
	if len(pcm16) != 0 {
		t.Errorf("ResampleToMono16() got %d samples, want 0", len(pcm16))
	}
}

func TestResampleToMono16_VariousRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{"44.1kHz to 8kHz", 44100, 8000},
		{"48kHz to 16kHz", 48000, 16000},
		{"8kHz to 16kHz (upsample)", 8000, 16000},
		{"22.05kHz to 8kHz", 22050, 8000},
		{"same rate", 16000, 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(audio.NewPCMFormat(tt.srcRate, 16, 2), tt.srcRate, 440.0)

			pcm16, err := ResampleToMono16(src, tt.dstRate)
			if err != nil {
				t.Fatalf("ResampleToMono16() error = %v", err)
			}

			// 1 second of audio at dstRate
			expected := tt.dstRate
			tolerance := tt.dstRate / 20
			if len(pcm16) < expected-tolerance || len(pcm16) > expected+tolerance {
				t.Errorf("ResampleToMono16() got %d samples, want ≈%d (±%d)",
					len(pcm16), expected, tolerance)
			}
		})
	}
}

func TestResampleToMono16_Clamping(t *testing.T) {
	t.Parallel()

	// float input outside [-1, 1] is clamped to full scale
	src := audiotest.NewMockSource(audio.NewFloatFormat(8000, 1), 99, func(frame int, _ int) float32 {
		switch frame % 3 {
		case 0:
			return 2
		case 1:
			return -2
		}
		return 0
	})

	pcm16, err := ResampleToMono16(src, 8000)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	if len(pcm16) != 99 {
		t.Fatalf("ResampleToMono16() got %d samples, want 99", len(pcm16))
	}
	if pcm16[0] != 32767 || pcm16[1] != -32768 || pcm16[2] != 0 {
		t.Errorf("ResampleToMono16() = %v, want [32767 -32768 0 ...]", pcm16[:3])
	}
}

func TestResample(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(audio.NewFloatFormat(48000, 6), 4800, 440)

	r, err := Resample(src, 16000, 8)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	defer r.Close()

	if got, want := r.Format(), audio.NewFloatFormat(16000, 2); got != want {
		t.Errorf("Format() = %v, want %v", got, want)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if frames := len(data) / 8; frames < 1500 || frames > 1700 {
		t.Errorf("Resample() produced %d frames, want ≈1600", frames)
	}

	if _, err := Resample(src, 16000, 0); !errors.Is(err, transform.ErrQualityOutOfRange) {
		t.Errorf("Resample(quality 0) error = %v, want ErrQualityOutOfRange", err)
	}
}

func TestTranscode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.aiff")

	src := audiotest.NewSineSource(audio.NewPCMFormat(44100, 16, 2), 44100/2, 440)
	if err := encode.EncodeFile(in, src); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	want := audio.NewPCMFormat(8000, 24, 1)
	if err := Transcode(in, out, want); err != nil {
		t.Fatalf("Transcode() error = %v", err)
	}

	f, err := formats.Open(out)
	if err != nil {
		t.Fatalf("Open(out) error = %v", err)
	}
	defer f.Close()

	if f.Format() != want {
		t.Errorf("output format = %v, want %v", f.Format(), want)
	}
	if frames := f.Len() / 3; frames < 3900 || frames > 4100 {
		t.Errorf("output holds %d frames, want ≈4000", frames)
	}

	if err := Transcode(filepath.Join(dir, "missing.wav"), out, want); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Transcode(missing) error = %v, want os.ErrNotExist", err)
	}
}

// BenchmarkResampleToMono16 benchmarks the complete pipeline
func BenchmarkResampleToMono16(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSineSource(audio.NewPCMFormat(44100, 16, 2), 44100, 440.0)
		_, _ = ResampleToMono16(src, 8000)
	}
}

// BenchmarkResampleToMono16_Upsample benchmarks upsampling
func BenchmarkResampleToMono16_Upsample(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSineSource(audio.NewPCMFormat(8000, 16, 2), 8000, 440.0)
		_, _ = ResampleToMono16(src, 44100)
	}
}
