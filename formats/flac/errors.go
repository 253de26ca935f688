// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream does not start with a FLAC header
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacFormat indicates a stream the provider cannot describe
	ErrUnsupportedFlacFormat = errors.New("unsupported FLAC stream")

	// ErrMalformedFrame indicates a frame with fewer subframes than channels
	ErrMalformedFrame = errors.New("malformed FLAC frame")
)
