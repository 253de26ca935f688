// SPDX-License-Identifier: EPL-2.0

// Package encode writes a Provider to a WAV or AIFF container using the
// go-audio encoders.
//
// The source must already be in a format the container can hold, see
// OutputFormats. Pair it with stream.Reader to convert first:
//
//	out, _ := encode.SelectFormat(encode.WAV, audio.NewPCMFormat(16000, 16, 1), 256000)
//	r, _ := stream.NewReader(src, out, nil)
//	defer r.Close()
//	err := encode.EncodeFile("out.wav", r)
//
// Encode reads the source four seconds at a time and stops at the first
// read that returns no data. A trailing partial frame is dropped.
package encode
