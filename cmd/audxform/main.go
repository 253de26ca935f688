// SPDX-License-Identifier: EPL-2.0

// Command audxform converts audio files between sample formats.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/internal/config"
)

// Globals holds the flags every command shares.
type Globals struct {
	Quality int           `short:"q" default:"4" env:"AUDXFORM_QUALITY" help:"Resampler quality, 1 to 64."`
	Chunk   time.Duration `default:"1s" help:"Audio read from the source per transform input."`
	ChunkMS int           `name:"chunk-ms" env:"AUDXFORM_CHUNK_MS" help:"Chunk duration in milliseconds, overrides --chunk."`
	Quiet   bool          `env:"AUDXFORM_QUIET" help:"Suppress log output."`
}

// ChunkDuration resolves --chunk-ms and --chunk.
func (g *Globals) ChunkDuration() time.Duration {
	if g.ChunkMS > 0 {
		return time.Duration(g.ChunkMS) * time.Millisecond
	}
	return g.Chunk
}

type CLI struct {
	Globals

	Convert ConvertCmd `cmd:"" help:"Convert an audio file to WAV or AIFF."`
	Info    InfoCmd    `cmd:"" help:"Show the format, duration and tags of an audio file."`
	Formats FormatsCmd `cmd:"" help:"List the sample formats a container can hold."`
}

func newParser(cli *CLI, stdout io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("audxform"),
		kong.Description("Decode, convert, resample and re-encode audio files."),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
}

func main() {
	ctx := logger.WithContext(context.Background())
	logger.Switch(os.Stderr)

	if loaded, err := config.Load(); err != nil {
		logger.Ef(ctx, "load config, err %+v", err)
		os.Exit(1)
	} else if len(loaded) > 0 {
		logger.Tf(ctx, "loaded env files %v", loaded)
	}

	var cli CLI
	parser, err := newParser(&cli, os.Stdout)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if cli.Quiet {
		logger.Switch(io.Discard)
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
