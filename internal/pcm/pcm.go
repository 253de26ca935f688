// SPDX-License-Identifier: EPL-2.0

// Package pcm holds byte-level helpers shared by the format decoders.
package pcm

import (
	"encoding/binary"

	"github.com/ik5/audxform/utils"
)

// Buffer holds decoded bytes that were not yet returned to the caller.
type Buffer struct {
	data []byte
	off  int
}

func (b *Buffer) Len() int { return len(b.data) - b.off }

// Read copies pending bytes into p.
func (b *Buffer) Read(p []byte) int {
	n := copy(p, b.data[b.off:])
	b.off += n
	if b.off == len(b.data) {
		b.Reset()
	}
	return n
}

// Skip drops up to n pending bytes.
func (b *Buffer) Skip(n int) {
	b.off += min(n, b.Len())
	if b.off == len(b.data) {
		b.Reset()
	}
}

// Grow discards pending bytes and returns a slice of n bytes to decode into.
func (b *Buffer) Grow(n int) []byte {
	if cap(b.data) < n {
		b.data = make([]byte, n)
	}
	b.data = b.data[:n]
	b.off = 0
	return b.data
}

// Truncate keeps only the first n bytes returned by Grow.
func (b *Buffer) Truncate(n int) { b.data = b.data[:n] }

func (b *Buffer) Reset() {
	b.data = b.data[:0]
	b.off = 0
}

// ContainerBits rounds a source bit depth up to a whole byte.
func ContainerBits(bits int) int {
	return (bits + 7) / 8 * 8
}

// PutSample writes v as a little-endian sample of the given container depth.
// 8-bit samples are stored unsigned, centred on 128.
func PutSample(dst []byte, v int32, bits int) {
	switch bits {
	case 8:
		dst[0] = uint8(v + 128)
	case 16:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case 24:
		utils.PutInt24LE(dst, v)
	case 32:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	}
}
