// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// scale maps x onto a signed integer range of the given full scale,
// rounding to nearest and clamping to [-full, full-1].
func scale(x float32, full float64) int64 {
	v := math.Round(float64(x) * full)
	switch {
	case v >= full:
		return int64(full) - 1
	case v < -full:
		return -int64(full)
	case v != v: // NaN
		return 0
	}
	return int64(v)
}

func Float32ToInt16(x float32) int16 {
	return int16(scale(x, 1<<15))
}

// Float32ToUint8 converts to unsigned 8-bit PCM, centred on 128.
func Float32ToUint8(x float32) uint8 {
	return uint8(scale(x, 1<<7) + 128)
}

// Float32ToInt24 converts to a 24-bit value held in an int32.
func Float32ToInt24(x float32) int32 {
	return int32(scale(x, 1<<23))
}

func Float32ToInt32(x float32) int32 {
	return int32(scale(x, 1<<31))
}

func Uint8ToFloat32(v uint8) float32 { return float32(int(v)-128) / 128.0 }

func Int16ToFloat32(v int16) float32 { return float32(v) / 32768.0 }

func Int24ToFloat32(v int32) float32 { return float32(float64(v) / 8388608.0) }

func Int32ToFloat32(v int32) float32 { return float32(float64(v) / 2147483648.0) }
