// SPDX-License-Identifier: EPL-2.0

package transform

import "github.com/ik5/audxform/audio"

// frameReader turns input chunks into float32 frames with outCh channels.
// A partial frame at the end of a chunk is kept for the next one.
type frameReader struct {
	in     audio.Format
	outCh  int
	carry  []byte
	raw    []byte
	floats []float32
	mixed  []float32
}

func (r *frameReader) frames(data []byte) []float32 {
	align := r.in.BlockAlign()

	r.raw = append(r.raw[:0], r.carry...)
	r.raw = append(r.raw, data...)
	whole := len(r.raw) / align * align
	r.carry = append(r.carry[:0], r.raw[whole:]...)

	r.floats = grow(r.floats, whole/r.in.BytesPerSample())
	audio.DecodeSamples(r.floats, r.raw[:whole], r.in)

	frames := whole / align
	r.mixed = grow(r.mixed, frames*r.outCh)
	remix(r.mixed, r.floats, r.in.Channels, r.outCh)

	return r.mixed
}

func (r *frameReader) reset() { r.carry = r.carry[:0] }

// framesToRefTime converts a frame count at rate into ticks.
func framesToRefTime(frames int64, rate int) audio.RefTime {
	return audio.RefTime(int64(audio.RefTimePerSecond) * frames / int64(rate))
}

func validateFormats(in, out audio.Format) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return out.Validate()
}
