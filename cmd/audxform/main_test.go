// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
	"github.com/ik5/audxform/formats"
	"github.com/ik5/audxform/internal/audiotest"
)

func TestMain(m *testing.M) {
	logger.Switch(io.Discard)
	os.Exit(m.Run())
}

func writeWAV(t *testing.T, f audio.Format, frames int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	if err := encode.EncodeFile(path, audiotest.NewSineSource(f, frames, 440)); err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}
	return path
}

func parse(t *testing.T, args ...string) (*CLI, string) {
	t.Helper()

	var cli CLI
	parser, err := newParser(&cli, io.Discard)
	if err != nil {
		t.Fatalf("newParser() error = %v", err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return &cli, kctx.Command()
}

func TestParse(t *testing.T) {
	in := writeWAV(t, audio.NewPCMFormat(8000, 16, 1), 80)

	cli, cmd := parse(t, "convert", in, "out.aiff", "-r", "16000", "--channels", "2", "--start", "1.5s", "-q", "12")
	if cmd != "convert <in> <out>" {
		t.Errorf("Command() = %q", cmd)
	}
	if cli.Convert.Rate != 16000 || cli.Convert.Channels != 2 || cli.Convert.Start != 1500*time.Millisecond {
		t.Errorf("convert flags = %+v", cli.Convert)
	}
	if cli.Quality != 12 {
		t.Errorf("Quality = %d, want 12", cli.Quality)
	}
	if cli.ChunkDuration() != time.Second {
		t.Errorf("ChunkDuration() = %v, want 1s", cli.ChunkDuration())
	}

	t.Setenv("AUDXFORM_QUALITY", "9")
	t.Setenv("AUDXFORM_CHUNK_MS", "250")
	cli, _ = parse(t, "formats", "aiff")
	if cli.Quality != 9 || cli.ChunkDuration() != 250*time.Millisecond {
		t.Errorf("env Quality = %d, ChunkDuration() = %v, want 9 and 250ms", cli.Quality, cli.ChunkDuration())
	}
}

func TestConvertCmd_OutputFormat(t *testing.T) {
	t.Parallel()

	src := audio.NewPCMFormat(44100, 16, 2)

	tests := []struct {
		name      string
		cmd       ConvertCmd
		container encode.Container
		want      audio.Format
		wantErr   bool
	}{
		{"keep", ConvertCmd{}, encode.WAV, src, false},
		{"rate and channels", ConvertCmd{Rate: 8000, Channels: 1}, encode.AIFF, audio.NewPCMFormat(8000, 16, 1), false},
		{"bits", ConvertCmd{Bits: 24}, encode.WAV, audio.NewPCMFormat(44100, 24, 2), false},
		{"float", ConvertCmd{Float: true}, encode.WAV, audio.NewFloatFormat(44100, 2), false},
		{"float into aiff", ConvertCmd{Float: true}, encode.AIFF, audio.Format{}, true},
		{"odd bits", ConvertCmd{Bits: 12}, encode.WAV, audio.Format{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cmd.outputFormat(src, tt.container)
			if tt.wantErr {
				if err == nil {
					t.Errorf("outputFormat() = %v, want error", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("outputFormat() = %v, %v, want %v", got, err, tt.want)
			}
		})
	}

	// float sources go to PCM in AIFF at the closest bitrate
	got, err := (&ConvertCmd{}).outputFormat(audio.NewFloatFormat(8000, 1), encode.AIFF)
	if err != nil || got != audio.NewPCMFormat(8000, 32, 1) {
		t.Errorf("outputFormat(float source, AIFF) = %v, %v", got, err)
	}
}

func TestConvertCmd_Run(t *testing.T) {
	t.Parallel()

	in := writeWAV(t, audio.NewPCMFormat(16000, 16, 2), 16000)
	out := filepath.Join(t.TempDir(), "out.aiff")

	cmd := ConvertCmd{In: in, Out: out, Rate: 8000, Channels: 1, Start: 500 * time.Millisecond}
	g := &Globals{Quality: 4, Chunk: 100 * time.Millisecond}
	if err := cmd.Run(g, context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f, err := formats.Open(out)
	if err != nil {
		t.Fatalf("Open(out) error = %v", err)
	}
	defer f.Close()

	if want := audio.NewPCMFormat(8000, 16, 1); f.Format() != want {
		t.Errorf("output format = %v, want %v", f.Format(), want)
	}
	// half of one second remains after the start offset
	if frames := f.Len() / 2; frames < 3900 || frames > 4100 {
		t.Errorf("output holds %d frames, want ≈4000", frames)
	}

	bad := ConvertCmd{In: in, Out: filepath.Join(t.TempDir(), "out.mp3")}
	if err := bad.Run(g, context.Background()); !errors.Is(err, encode.ErrUnsupportedContainer) {
		t.Errorf("Run(mp3 output) error = %v, want ErrUnsupportedContainer", err)
	}
}

func TestInfoCmd(t *testing.T) {
	t.Parallel()

	in := writeWAV(t, audio.NewPCMFormat(8000, 16, 1), 4000)

	var out bytes.Buffer
	if err := (&InfoCmd{Path: in}).print(&out); err != nil {
		t.Fatalf("print() error = %v", err)
	}

	for _, want := range []string{"container: wav", "format:    pcm 8000Hz 1ch 16bit", "duration:  500ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("info output %q lacks %q", out.String(), want)
		}
	}
}

func TestFormatsCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := (&FormatsCmd{Container: "aiff", Rate: 8000, Channels: 1}).print(&out); err != nil {
		t.Fatalf("print() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("formats listed %d lines, want 4:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "pcm 8000Hz 1ch 16bit") || !strings.HasSuffix(lines[1], "128000 bps") {
		t.Errorf("line 2 = %q", lines[1])
	}
}
