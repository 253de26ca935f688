// SPDX-License-Identifier: EPL-2.0

package encode

import "github.com/ik5/audxform/audio"

// Buffer is an in-memory io.WriteSeeker for encoding without a file.
type Buffer struct {
	data []byte
	pos  int64
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		}
		b.data = b.data[:end]
	}

	copy(b.data[b.pos:], p)
	b.pos = end
	return len(p), nil
}

// Seek may move past the end; the gap is zero filled by the next Write.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	next, err := audio.SeekTarget(offset, whence, b.pos, int64(len(b.data)))
	if err != nil {
		return 0, err
	}
	b.pos = next
	return next, nil
}

// Bytes returns everything written so far.
func (b *Buffer) Bytes() []byte { return b.data }
