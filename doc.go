// SPDX-License-Identifier: EPL-2.0

// Package audxform converts audio between sample formats by pushing it
// through transforms, and reads and writes the common file containers.
//
// The building blocks live in subpackages:
//   - audio: formats, providers and the sample codec
//   - transform: the transform contract and the built-in converter and resampler
//   - stream: Reader, which drives a transform from a source provider
//   - formats: decoders for WAV, MP3, Ogg Vorbis, AIFF and FLAC
//   - encode: WAV and AIFF writers
//
// This package ties them together for the common cases.
//
// # Quick Start
//
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// 8kHz mono, 16-bit PCM
//	samples, _ := audxform.ResampleToMono16(src, 8000)
//
// Convert and Resample return a stream.Reader, itself a provider, so the
// result can be read incrementally or handed to encode:
//
//	r, _ := audxform.Convert(src, audio.NewPCMFormat(16000, 16, 1))
//	defer r.Close()
//	_ = encode.EncodeFile("out.wav", r)
//
// Transcode does all of that for a pair of paths:
//
//	err := audxform.Transcode("in.mp3", "out.aiff", audio.NewPCMFormat(44100, 24, 2))
//
// # Resampling
//
// Sample rate conversion uses beep's Lagrange resampler. Quality runs from
// 1 to 64 and defaults to 4; higher is slower and closer to ideal.
package audxform
