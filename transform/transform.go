// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

// Message is a lifecycle signal sent to a Transform.
type Message int

const (
	MessageFlush Message = iota
	MessageBeginStreaming
	MessageStartOfStream
	MessageEndOfStream
	MessageDrain
	MessageEndStreaming
)

func (m Message) String() string {
	switch m {
	case MessageFlush:
		return "flush"
	case MessageBeginStreaming:
		return "begin-streaming"
	case MessageStartOfStream:
		return "start-of-stream"
	case MessageEndOfStream:
		return "end-of-stream"
	case MessageDrain:
		return "drain"
	case MessageEndStreaming:
		return "end-streaming"
	default:
		return fmt.Sprintf("message(%d)", int(m))
	}
}

// Status is a bit set reported alongside output.
type Status uint32

const (
	// StatusEndOfStream marks output requested after a drain completed.
	StatusEndOfStream Status = 1 << iota
	// StatusFormatChange reports that the output format changed mid-stream.
	StatusFormatChange

	knownStatus = StatusEndOfStream | StatusFormatChange
)

// Unknown returns the bits of s that have no defined meaning.
func (s Status) Unknown() Status { return s &^ knownStatus }

// Sample is a timestamped chunk of interleaved audio bytes.
type Sample struct {
	Data     []byte
	Time     audio.RefTime
	Duration audio.RefTime
}

// Result is the outcome of a single ProcessOutput call.
type Result struct {
	Sample
	// HasOutput is true when Sample carries data. It is false when the
	// transform needs more input (or has nothing left after a drain).
	HasOutput bool
	Status    Status
}

// Transform is a stateful unit converting input chunks into output chunks,
// possibly after a delay.
//
// Input is accepted only between MessageBeginStreaming and
// MessageEndStreaming. After MessageDrain, ProcessOutput yields every
// remaining chunk and then reports HasOutput == false.
type Transform interface {
	ProcessMessage(m Message) error
	ProcessInput(s Sample) error
	ProcessOutput() (Result, error)
	Close() error
}

// Factory creates a Transform converting in to out.
type Factory func(in, out audio.Format) (Transform, error)
