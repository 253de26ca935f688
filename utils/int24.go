// SPDX-License-Identifier: EPL-2.0

package utils

// PutInt24LE packs the low 24 bits of v into b, little-endian.
func PutInt24LE(b []byte, v int32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// Int24LE reads a signed little-endian 24-bit value and sign-extends it.
func Int24LE(b []byte) int32 {
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}
