// SPDX-License-Identifier: EPL-2.0

package stream

import "fmt"

// State is the streaming state of a Reader's transform.
type State int

const (
	// StateIdle means the transform has not been started, or was fully drained.
	StateIdle State = iota
	// StateStreaming means the transform accepts input.
	StateStreaming
	// StateDraining is held while end-of-input output is collected, and
	// after a drain that failed, until it is retried.
	StateDraining
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStreaming:
		return "streaming"
	case StateDraining:
		return "draining"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
