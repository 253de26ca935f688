// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/transform"
)

// Reader pulls bytes from a source provider, passes them through a
// transform and serves the transform's output as an audio.Provider.
//
// The transform is created on the first Read, on the goroutine that calls
// it. A Reader is not safe for concurrent use.
type Reader struct {
	ctx     context.Context
	id      string
	src     audio.Provider
	in, out audio.Format
	factory transform.Factory

	tr     transform.Transform
	state  State
	chunk  []byte
	acc    *accumulator
	closed bool

	inputPos  audio.RefTime
	outputPos audio.RefTime
}

// NewReader returns a Reader converting src to the out format with
// transforms made by factory (transform.Auto when nil).
//
// Both formats must be PCM or IEEE float. The factory is tried once here so
// that an impossible conversion fails with transform.ErrTransformUnavailable
// before any data is read; the probe transform is closed immediately.
func NewReader(src audio.Provider, out audio.Format, factory transform.Factory, opts ...Option) (*Reader, error) {
	in := src.Format()
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("source format %s: %w", in, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("output format %s: %w", out, err)
	}

	if factory == nil {
		factory = transform.Auto
	}

	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Reader{
		ctx:     logger.WithContext(o.ctx),
		id:      uuid.NewString(),
		src:     src,
		in:      in,
		out:     out,
		factory: factory,
		chunk:   make([]byte, chunkSize(in, o)),
		acc:     newAccumulator(out.AverageBytesPerSecond() + out.BlockAlign()),
	}

	probe, err := r.create()
	if err != nil {
		return nil, err
	}
	if err := probe.Close(); err != nil {
		logger.Wf(r.ctx, "reader %v: close probe transform, err %+v", r.id, err)
	}

	logger.Tf(r.ctx, "reader %v: %v -> %v, chunk=%v bytes", r.id, in, out, len(r.chunk))
	return r, nil
}

func chunkSize(in audio.Format, o options) int {
	size := in.AverageBytesPerSecond()
	switch {
	case o.chunkSize > 0:
		size = o.chunkSize
	case o.chunkDuration > 0:
		size = int(audio.RefTimeToBytes(audio.RefTime(o.chunkDuration/100), in))
	}

	align := in.BlockAlign()
	return max(size/align*align, align)
}

func (r *Reader) create() (transform.Transform, error) {
	tr, err := r.factory(r.in, r.out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v -> %v: %w", transform.ErrTransformUnavailable, r.in, r.out, err)
	}
	return tr, nil
}

// Format is the format of the bytes returned by Read.
func (r *Reader) Format() audio.Format { return r.out }

// SourceFormat is the format of the wrapped provider.
func (r *Reader) SourceFormat() audio.Format { return r.in }

func (r *Reader) State() State { return r.state }

// Positions returns the timestamps of the next input chunk and of the end
// of the output received so far. Both return to zero after a drain.
func (r *Reader) Positions() (input, output audio.RefTime) {
	return r.inputPos, r.outputPos
}

// Read fills p with transform output. It returns fewer than len(p) bytes
// only when the source is exhausted and the transform fully drained, and
// io.EOF only once nothing at all is left.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	if r.tr == nil {
		tr, err := r.create()
		if err != nil {
			return 0, err
		}
		r.tr = tr
		logger.Tf(r.ctx, "reader %v: transform created", r.id)
	}

	written := r.acc.read(p)

	for written < len(p) {
		n, err := r.src.Read(r.chunk)
		if audio.IsExhausted(n, err) {
			if err := r.endOfInput(); err != nil {
				return written, err
			}
			written += r.acc.read(p[written:])
			break
		}
		if n == 0 {
			return written, fmt.Errorf("read source: %w", err)
		}

		if err := r.feed(r.chunk[:n]); err != nil {
			return written, err
		}
		if err := r.collect(true); err != nil {
			return written, err
		}
		written += r.acc.read(p[written:])

		if err != nil && !errors.Is(err, io.EOF) {
			return written, fmt.Errorf("read source: %w", err)
		}
	}

	if written == 0 {
		return 0, io.EOF
	}
	return written, nil
}

func (r *Reader) feed(data []byte) error {
	if r.state != StateStreaming {
		if err := r.begin(); err != nil {
			return err
		}
	}

	duration := audio.BytesToRefTime(len(data), r.in)
	err := r.tr.ProcessInput(transform.Sample{
		Data:     data,
		Time:     r.inputPos,
		Duration: duration,
	})
	if err != nil {
		return fmt.Errorf("process input at %v: %w", r.inputPos.Duration(), err)
	}

	r.inputPos += duration
	return nil
}

// collect requests output until the transform has none. When keep is false
// the output is discarded.
func (r *Reader) collect(keep bool) error {
	for {
		res, err := r.tr.ProcessOutput()
		if err != nil {
			return fmt.Errorf("process output: %w", err)
		}
		if err := checkStatus(res.Status); err != nil {
			logger.Ef(r.ctx, "reader %v: transform status, err %+v", r.id, err)
			return err
		}
		if !res.HasOutput {
			return nil
		}

		if keep {
			r.acc.write(res.Data)
		}
		r.outputPos += audio.BytesToRefTime(len(res.Data), r.out)
	}
}

func (r *Reader) begin() error {
	for _, m := range []transform.Message{
		transform.MessageFlush,
		transform.MessageBeginStreaming,
		transform.MessageStartOfStream,
	} {
		if err := r.tr.ProcessMessage(m); err != nil {
			return fmt.Errorf("%v: %w", m, err)
		}
	}

	r.state = StateStreaming
	return nil
}

// drain ends the stream, collects every trailing output chunk and resets
// the positions.
func (r *Reader) drain(keep bool) error {
	r.state = StateDraining

	for _, m := range []transform.Message{transform.MessageEndOfStream, transform.MessageDrain} {
		if err := r.tr.ProcessMessage(m); err != nil {
			return fmt.Errorf("%v: %w", m, err)
		}
	}

	if err := r.collect(keep); err != nil {
		return err
	}

	if err := r.tr.ProcessMessage(transform.MessageEndStreaming); err != nil {
		return fmt.Errorf("%v: %w", transform.MessageEndStreaming, err)
	}

	logger.Tf(r.ctx, "reader %v: drained, in=%v out=%v buffered=%v", r.id,
		r.inputPos.Duration(), r.outputPos.Duration(), r.acc.len())

	r.inputPos, r.outputPos = 0, 0
	r.state = StateIdle
	return nil
}

// endOfInput drains a streaming transform. A drain that failed part way
// leaves the reader in StateDraining and is retried here.
func (r *Reader) endOfInput() error {
	if r.state == StateIdle {
		return nil
	}
	return r.drain(true)
}

// Reposition tells the reader that the source was moved. Buffered output
// is discarded. A streaming transform is drained, its output dropped, and
// streaming restarted.
func (r *Reader) Reposition() error {
	if r.closed {
		return ErrClosed
	}

	r.acc.reset()

	if r.state == StateIdle {
		return nil
	}

	logger.Tf(r.ctx, "reader %v: reposition", r.id)
	if err := r.drain(false); err != nil {
		return err
	}
	return r.begin()
}

// SetPosition seeks the source to t and repositions the reader.
// The source must implement audio.Seeker.
func (r *Reader) SetPosition(t audio.RefTime) error {
	if r.closed {
		return ErrClosed
	}
	if t < 0 {
		return audio.ErrNegativePosition
	}

	seeker, ok := r.src.(audio.Seeker)
	if !ok {
		return ErrNotSeekable
	}

	if _, err := seeker.Seek(audio.RefTimeToBytes(t, r.in), io.SeekStart); err != nil {
		return fmt.Errorf("seek source to %v: %w", t.Duration(), err)
	}

	return r.Reposition()
}

// Close releases the transform. It does not close the source. Release
// failures are logged, and Close always returns nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.tr != nil {
		if err := r.tr.Close(); err != nil {
			logger.Wf(r.ctx, "reader %v: release transform, err %+v", r.id, err)
		}
		r.tr = nil
	}

	r.acc.reset()
	return nil
}
