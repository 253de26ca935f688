// SPDX-License-Identifier: EPL-2.0

package stream

// accumulator holds transform output that has not been delivered yet.
// The unread window is buf[offset : offset+count]; offset returns to zero
// whenever the window empties. The buffer grows on demand and never shrinks.
type accumulator struct {
	buf    []byte
	offset int
	count  int
}

func newAccumulator(capacity int) *accumulator {
	return &accumulator{buf: make([]byte, capacity)}
}

func (a *accumulator) write(p []byte) {
	if len(p) == 0 {
		return
	}

	end := a.offset + a.count
	if end+len(p) > len(a.buf) {
		if a.count+len(p) > len(a.buf) {
			grown := make([]byte, max(2*len(a.buf), a.count+len(p)))
			copy(grown, a.buf[a.offset:end])
			a.buf = grown
		} else {
			copy(a.buf, a.buf[a.offset:end])
		}
		a.offset = 0
		end = a.count
	}

	copy(a.buf[end:], p)
	a.count += len(p)
}

// read copies min(len(dst), a.len()) bytes from the window into dst.
func (a *accumulator) read(dst []byte) int {
	n := copy(dst, a.buf[a.offset:a.offset+a.count])
	a.offset += n
	a.count -= n
	if a.count == 0 {
		a.offset = 0
	}
	return n
}

func (a *accumulator) len() int { return a.count }

func (a *accumulator) cap() int { return len(a.buf) }

func (a *accumulator) reset() {
	a.offset = 0
	a.count = 0
}
