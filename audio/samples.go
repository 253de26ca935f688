// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audxform/utils"
)

// DecodeSamples converts little-endian bytes of format f into float32 samples
// in [-1, 1]. Only whole samples are converted; the return value is the
// number of samples written to dst.
func DecodeSamples(dst []float32, src []byte, f Format) int {
	size := f.BytesPerSample()
	if size == 0 {
		return 0
	}

	n := min(len(dst), len(src)/size)
	switch {
	case f.Encoding == EncodingIEEEFloat && size == 4:
		for i := range n {
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
		}
	case f.Encoding == EncodingIEEEFloat && size == 8:
		for i := range n {
			dst[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:])))
		}
	case size == 1:
		for i := range n {
			dst[i] = utils.Uint8ToFloat32(src[i])
		}
	case size == 2:
		for i := range n {
			dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(src[i*2:])))
		}
	case size == 3:
		for i := range n {
			dst[i] = utils.Int24ToFloat32(utils.Int24LE(src[i*3:]))
		}
	case size == 4:
		for i := range n {
			dst[i] = utils.Int32ToFloat32(int32(binary.LittleEndian.Uint32(src[i*4:])))
		}
	default:
		return 0
	}

	return n
}

// EncodeSamples converts float32 samples into little-endian bytes of format f,
// clamping integer output to full scale. It returns the number of bytes written.
func EncodeSamples(dst []byte, src []float32, f Format) int {
	size := f.BytesPerSample()
	if size == 0 {
		return 0
	}

	n := min(len(src), len(dst)/size)
	switch {
	case f.Encoding == EncodingIEEEFloat && size == 4:
		for i := range n {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(src[i]))
		}
	case f.Encoding == EncodingIEEEFloat && size == 8:
		for i := range n {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(float64(src[i])))
		}
	case size == 1:
		for i := range n {
			dst[i] = utils.Float32ToUint8(src[i])
		}
	case size == 2:
		for i := range n {
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(utils.Float32ToInt16(src[i])))
		}
	case size == 3:
		for i := range n {
			utils.PutInt24LE(dst[i*3:], utils.Float32ToInt24(src[i]))
		}
	case size == 4:
		for i := range n {
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(utils.Float32ToInt32(src[i])))
		}
	default:
		return 0
	}

	return n * size
}
