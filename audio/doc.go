// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core types shared by decoders, transforms and
// encoders.
//
//   - Format describes an interleaved byte stream (encoding, rate, channels, bits)
//   - Provider is the pull interface every decoder and transform reader implements
//   - RefTime is the hundred-nanosecond time base used to timestamp chunks
//   - DecodeSamples / EncodeSamples convert between bytes and float32 samples
//   - Registry maps format keys to decoders
//
// # Provider Interface
//
//	type Provider interface {
//	    Format() Format
//	    Read(p []byte) (int, error)
//	}
//
// A provider is exhausted when Read returns zero bytes together with io.EOF
// (or a nil error). Providers that can change position also implement Seeker,
// whose offsets are bytes in the provider's own format.
//
// # Formats
//
// Only integer PCM (8, 16, 24 and 32 bit) and IEEE float (32 and 64 bit) are
// accepted by transforms:
//
//	in := audio.NewPCMFormat(44100, 16, 2)
//	out := audio.NewFloatFormat(16000, 1)
//	if err := in.Validate(); err != nil {
//	    // audio.ErrUnsupportedFormat or audio.ErrInvalidFormat
//	}
//
// # Time Base
//
// Chunk timestamps and durations are RefTime values:
//
//	d := audio.BytesToRefTime(n, in) // 10,000,000 ticks per second
//
// # Sample Format
//
// Intermediate samples are float32 in the range [-1.0, 1.0]. Integer output
// is clamped to full scale; 8-bit PCM is unsigned and centred on 128.
package audio
