// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"

	"github.com/ik5/audxform/transform"
)

var (
	ErrFormatChanged = errors.New("transform output format changed mid-stream")
	ErrClosed        = errors.New("reader is closed")
	ErrNotSeekable   = errors.New("source does not support seeking")
)

// UnexpectedStatusError is returned when a transform reports status bits
// the reader does not know how to handle.
type UnexpectedStatusError struct {
	Status transform.Status
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected transform status 0x%08x", uint32(e.Status))
}

func checkStatus(s transform.Status) error {
	if s&transform.StatusFormatChange != 0 {
		return ErrFormatChanged
	}
	if s.Unknown() != 0 {
		return &UnexpectedStatusError{Status: s}
	}
	return nil
}
