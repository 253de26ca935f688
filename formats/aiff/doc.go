// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
//   - PCM at 8, 16, 24 or 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// AIFF stores samples big-endian and signed. The provider returned by
// Decoder serves them little-endian, the same layout a WAV file uses, with
// 8-bit samples made unsigned:
//
//	file, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(src.Format()) // pcm 44100Hz 2ch 16bit
//
// # Seeking
//
// go-audio/aiff reads forward only, so a Seek reopens the file from its
// header and skips whole frames up to the target. Inputs that are not
// io.ReadSeeker are read into memory first.
//
// # File Extensions
//
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C (compressed, not supported)
package aiff
