// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
// Vorbis decodes to floating point, so the provider's format is 32-bit
// IEEE float with the stream's own rate and channel count:
//
//	file, _ := os.Open("audio.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(src.Format()) // float 44100Hz 2ch 32bit
//
// Seeking requires the input to be an io.ReadSeeker and lands on the
// start of the frame containing the requested offset.
package vorbis
