// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"
	"math"

	"github.com/faiface/beep"

	"github.com/ik5/audxform/audio"
)

const (
	DefaultQuality = 4
	MinQuality     = 1
	MaxQuality     = 64

	// beep pulls its source in blocks of this many frames and treats a
	// short block as the end of the stream.
	resampleBlock = 512
)

// inputQueue is the beep.Streamer the resampler pulls from. It only ever
// holds frames that were pushed through ProcessInput.
type inputQueue struct {
	frames [][2]float64
}

func (q *inputQueue) Stream(samples [][2]float64) (int, bool) {
	if len(q.frames) == 0 {
		return 0, false
	}
	n := copy(samples, q.frames)
	q.frames = q.frames[n:]
	return n, true
}

func (q *inputQueue) Err() error { return nil }

// Resampler converts sample rate using beep's interpolating resampler.
// Input is folded to the output channel count (at most two) first.
//
// Output is produced only once enough input is queued that beep never sees
// a short block, so the stream has a delay of roughly one block plus the
// interpolation window. Drain releases everything that remains.
type Resampler struct {
	lifecycle
	in, out audio.Format
	quality int
	ratio   float64

	frames   frameReader
	queue    *inputQueue
	res      *beep.Resampler
	fed      int // input frames since the last restart
	produced int // output frames since the last restart

	block  [][2]float64
	floats []float32
}

func NewResampler(in, out audio.Format, quality int) (*Resampler, error) {
	if quality < MinQuality || quality > MaxQuality {
		return nil, fmt.Errorf("quality %d: %w", quality, ErrQualityOutOfRange)
	}
	if err := validateFormats(in, out); err != nil {
		return nil, err
	}
	if out.Channels > 2 {
		return nil, fmt.Errorf("resampler %s -> %s: %w", in, out, ErrUnsupportedConversion)
	}

	r := &Resampler{
		in:      in,
		out:     out,
		quality: quality,
		ratio:   float64(in.SampleRate) / float64(out.SampleRate),
		frames:  frameReader{in: in, outCh: out.Channels},
	}
	r.restart()

	return r, nil
}

func (r *Resampler) restart() {
	r.queue = &inputQueue{}
	r.res = beep.Resample(r.quality, beep.SampleRate(r.in.SampleRate), beep.SampleRate(r.out.SampleRate), r.queue)
	r.fed = 0
	r.produced = 0
	r.frames.reset()
}

func (r *Resampler) ProcessMessage(m Message) error {
	flush, err := r.message(m)
	if err != nil {
		return err
	}

	switch {
	case flush:
		r.restart()
	case m == MessageDrain:
		return r.drain()
	}

	return nil
}

func (r *Resampler) ProcessInput(s Sample) error {
	if err := r.checkInput(); err != nil {
		return err
	}

	mixed := r.frames.frames(s.Data)
	ch := r.out.Channels
	for i := 0; i+ch <= len(mixed); i += ch {
		left := float64(mixed[i])
		right := left
		if ch == 2 {
			right = float64(mixed[i+1])
		}
		r.queue.frames = append(r.queue.frames, [2]float64{left, right})
		r.fed++
	}

	if n := r.ready(); n > 0 {
		return r.stream(n)
	}

	return nil
}

// ready is the number of output frames that can be produced without beep
// reaching past the last whole block of queued input.
func (r *Resampler) ready() int {
	covered := r.fed / resampleBlock * resampleBlock
	limit := covered - r.quality - 1
	if limit <= 0 {
		return 0
	}
	return max(int(float64(limit)/r.ratio)-r.produced, 0)
}

func (r *Resampler) drain() error {
	total := int(math.Ceil(float64(r.fed) / r.ratio))
	for r.produced < total {
		n := min(total-r.produced, r.out.SampleRate)
		k, ok := r.res.Stream(r.buffer(n))
		if k > 0 {
			r.emit(r.block[:k])
		}
		if !ok || k == 0 {
			break
		}
	}

	return r.res.Err()
}

func (r *Resampler) stream(n int) error {
	k, _ := r.res.Stream(r.buffer(n))
	if k > 0 {
		r.emit(r.block[:k])
	}
	return r.res.Err()
}

func (r *Resampler) buffer(n int) [][2]float64 {
	r.block = grow(r.block, n)
	return r.block
}

func (r *Resampler) emit(frames [][2]float64) {
	ch := r.out.Channels
	r.floats = grow(r.floats, len(frames)*ch)
	for i, f := range frames {
		r.floats[i*ch] = float32(f[0])
		if ch == 2 {
			r.floats[i*ch+1] = float32(f[1])
		}
	}

	data := make([]byte, len(r.floats)*r.out.BytesPerSample())
	audio.EncodeSamples(data, r.floats, r.out)

	r.push(Sample{
		Data:     data,
		Time:     framesToRefTime(int64(r.produced), r.out.SampleRate),
		Duration: framesToRefTime(int64(len(frames)), r.out.SampleRate),
	})
	r.produced += len(frames)
}

func (r *Resampler) ProcessOutput() (Result, error) { return r.pop() }

func (r *Resampler) Close() error {
	r.close()
	r.queue = nil
	r.res = nil
	return nil
}
