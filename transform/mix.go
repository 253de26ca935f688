// SPDX-License-Identifier: EPL-2.0

package transform

// remix maps interleaved frames from inCh to outCh channels and returns the
// number of frames written to dst.
//
// Mono output averages every input channel, mono input is copied to every
// output channel, and other layouts take out[c] = in[c % inCh].
func remix(dst, src []float32, inCh, outCh int) int {
	frames := min(len(src)/inCh, len(dst)/outCh)

	switch {
	case inCh == outCh:
		copy(dst, src[:frames*inCh])
	case outCh == 1 && inCh == 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (src[idx] + src[idx+1]) * 0.5
		}
	case outCh == 1:
		inv := float32(1.0) / float32(inCh)
		for f := range frames {
			sum := float32(0)
			base := f * inCh
			for c := range inCh {
				sum += src[base+c]
			}
			dst[f] = sum * inv
		}
	case inCh == 1:
		for f := range frames {
			base := f * outCh
			for c := range outCh {
				dst[base+c] = src[f]
			}
		}
	default:
		for f := range frames {
			in, out := f*inCh, f*outCh
			for c := range outCh {
				dst[out+c] = src[in+c%inCh]
			}
		}
	}

	return frames
}

// grow returns buf resized to n, reallocating only when capacity is short.
func grow[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}
