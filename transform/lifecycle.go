// SPDX-License-Identifier: EPL-2.0

package transform

// lifecycle tracks the streaming signals shared by the built-in transforms,
// together with the queue of produced chunks.
type lifecycle struct {
	accepting bool
	draining  bool
	closed    bool
	pending   []Sample
}

// message updates the common state and reports whether m asks for a flush.
func (l *lifecycle) message(m Message) (flush bool, err error) {
	if l.closed {
		return false, ErrClosed
	}

	switch m {
	case MessageFlush:
		l.pending = l.pending[:0]
		l.draining = false
		return true, nil
	case MessageBeginStreaming:
		l.accepting = true
	case MessageStartOfStream:
		l.draining = false
	case MessageEndOfStream:
	case MessageDrain:
		l.draining = true
	case MessageEndStreaming:
		l.accepting = false
	}

	return false, nil
}

func (l *lifecycle) checkInput() error {
	switch {
	case l.closed:
		return ErrClosed
	case !l.accepting || l.draining:
		return ErrNotAccepting
	}
	return nil
}

func (l *lifecycle) push(s Sample) {
	l.pending = append(l.pending, s)
}

func (l *lifecycle) pop() (Result, error) {
	if l.closed {
		return Result{}, ErrClosed
	}

	if len(l.pending) == 0 {
		var status Status
		if l.draining {
			status = StatusEndOfStream
		}
		return Result{Status: status}, nil
	}

	s := l.pending[0]
	l.pending[0] = Sample{}
	l.pending = l.pending[1:]
	return Result{Sample: s, HasOutput: true}, nil
}

func (l *lifecycle) close() {
	l.closed = true
	l.pending = nil
}
