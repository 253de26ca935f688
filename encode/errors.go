// SPDX-License-Identifier: EPL-2.0

package encode

import "errors"

var (
	ErrUnsupportedContainer = errors.New("unsupported output container")
	ErrUnsupportedInput     = errors.New("input format cannot be stored in this container")
	ErrNoMatchingFormat     = errors.New("no output format matches the sample rate and channels")
)
