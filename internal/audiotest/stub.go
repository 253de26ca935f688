// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/transform"
)

// StubTransform is an instrumented transform. It emits one output chunk for
// every InputsPerOutput input chunks, holding the bytes in between, and
// counts every call it receives.
type StubTransform struct {
	// InputsPerOutput defaults to 1 (passthrough).
	InputsPerOutput int
	// TrailingChunks splits the held bytes released by a drain into this
	// many chunks. Defaults to 1.
	TrailingChunks int
	// Status is reported with every output chunk.
	Status transform.Status
	// CloseErr is returned by Close.
	CloseErr error

	Messages    []transform.Message
	Inputs      []transform.Sample
	InputCalls  int
	OutputCalls int
	Closed      bool

	accepting bool
	held      [][]byte
	ready     [][]byte
	position  audio.RefTime
	format    audio.Format
}

func (s *StubTransform) ProcessMessage(m transform.Message) error {
	s.Messages = append(s.Messages, m)

	switch m {
	case transform.MessageFlush:
		s.held, s.ready = nil, nil
		s.position = 0
	case transform.MessageBeginStreaming:
		s.accepting = true
	case transform.MessageDrain:
		s.release()
	case transform.MessageEndStreaming:
		s.accepting = false
	}

	return nil
}

func (s *StubTransform) ProcessInput(in transform.Sample) error {
	s.InputCalls++
	if !s.accepting {
		return transform.ErrNotAccepting
	}

	s.Inputs = append(s.Inputs, in)
	s.held = append(s.held, bytes.Clone(in.Data))

	if len(s.held) >= max(s.InputsPerOutput, 1) {
		s.ready = append(s.ready, bytes.Join(s.held, nil))
		s.held = nil
	}

	return nil
}

func (s *StubTransform) release() {
	if len(s.held) == 0 {
		return
	}

	data := bytes.Join(s.held, nil)
	s.held = nil

	parts := max(s.TrailingChunks, 1)
	size := (len(data) + parts - 1) / parts
	for len(data) > 0 {
		n := min(size, len(data))
		s.ready = append(s.ready, data[:n])
		data = data[n:]
	}
}

func (s *StubTransform) ProcessOutput() (transform.Result, error) {
	s.OutputCalls++

	if len(s.ready) == 0 {
		return transform.Result{}, nil
	}

	data := s.ready[0]
	s.ready = s.ready[1:]

	duration := audio.BytesToRefTime(len(data), s.format)
	res := transform.Result{
		Sample:    transform.Sample{Data: data, Time: s.position, Duration: duration},
		HasOutput: true,
		Status:    s.Status,
	}
	s.position += duration

	return res, nil
}

func (s *StubTransform) Close() error {
	s.Closed = true
	return s.CloseErr
}

// StubFactory hands out StubTransforms and remembers each one.
type StubFactory struct {
	// New configures each transform. A zero StubTransform is used when nil.
	New func() *StubTransform
	// Err makes every Create call fail.
	Err error

	Created []*StubTransform
}

func (f *StubFactory) Create(in, out audio.Format) (transform.Transform, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	s := &StubTransform{}
	if f.New != nil {
		s = f.New()
	}
	s.format = out
	f.Created = append(f.Created, s)

	return s, nil
}

// Last returns the most recently created transform.
func (f *StubFactory) Last() *StubTransform {
	if len(f.Created) == 0 {
		return nil
	}
	return f.Created[len(f.Created)-1]
}
