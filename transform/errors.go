// SPDX-License-Identifier: EPL-2.0

package transform

import "errors"

var (
	ErrNotAccepting          = errors.New("transform is not accepting input")
	ErrTransformUnavailable  = errors.New("no transform available for the requested formats")
	ErrUnsupportedConversion = errors.New("transform cannot convert between these formats")
	ErrQualityOutOfRange     = errors.New("resampler quality must be between 1 and 64")
	ErrClosed                = errors.New("transform is closed")
)
