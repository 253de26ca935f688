// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("only pcm or ieee float formats are supported")
	ErrInvalidFormat     = errors.New("invalid audio format")
	ErrNegativePosition  = errors.New("position cannot be negative")
	ErrInvalidWhence     = errors.New("invalid whence")
)
