// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
// Output is little-endian PCM at the stream's bit depth rounded up to a
// whole byte, so a 12-bit stream is served as 16-bit samples shifted left
// by four. Seeking restarts the stream and decodes forward.
package flac
