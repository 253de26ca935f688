// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

// Passthrough emits every input chunk unchanged, one output per input.
type Passthrough struct {
	lifecycle
	format audio.Format
}

func NewPassthrough(in, out audio.Format) (*Passthrough, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in != out {
		return nil, fmt.Errorf("passthrough %s -> %s: %w", in, out, ErrUnsupportedConversion)
	}
	return &Passthrough{format: in}, nil
}

func (p *Passthrough) ProcessMessage(m Message) error {
	_, err := p.message(m)
	return err
}

func (p *Passthrough) ProcessInput(s Sample) error {
	if err := p.checkInput(); err != nil {
		return err
	}

	data := make([]byte, len(s.Data))
	copy(data, s.Data)
	p.push(Sample{Data: data, Time: s.Time, Duration: s.Duration})
	return nil
}

func (p *Passthrough) ProcessOutput() (Result, error) { return p.pop() }

func (p *Passthrough) Close() error {
	p.close()
	return nil
}
