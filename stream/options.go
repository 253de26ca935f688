// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"context"
	"time"
)

type options struct {
	ctx           context.Context
	chunkSize     int
	chunkDuration time.Duration
}

// Option configures a Reader.
type Option func(*options)

// WithChunkSize sets how many source bytes are read per transform input.
// The size is rounded down to a whole frame, with a minimum of one frame.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithChunkDuration sets the source chunk as a duration of audio.
// The default is one second.
func WithChunkDuration(d time.Duration) Option {
	return func(o *options) { o.chunkDuration = d }
}

// WithContext sets the context used to tag log messages.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
