// SPDX-License-Identifier: EPL-2.0

// Package transform defines the contract of a stateful audio transform and
// provides the built-in implementations.
//
// A transform accepts timestamped input chunks and yields output chunks,
// possibly after a delay. Callers drive it with lifecycle messages:
//
//	tr.ProcessMessage(transform.MessageFlush)
//	tr.ProcessMessage(transform.MessageBeginStreaming)
//	tr.ProcessMessage(transform.MessageStartOfStream)
//	tr.ProcessInput(transform.Sample{Data: chunk, Time: t, Duration: d})
//	res, err := tr.ProcessOutput() // res.HasOutput reports whether data is present
//
// At the end of input, MessageEndOfStream and MessageDrain release buffered
// output; ProcessOutput is then called until HasOutput is false.
//
// Built-ins:
//   - Passthrough: identical formats
//   - Converter: encoding, bit depth and channel count at a fixed rate
//   - Resampler: sample rate conversion through github.com/faiface/beep
//
// Auto picks among them for a pair of formats.
package transform
