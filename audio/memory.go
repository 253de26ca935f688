// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// MemoryProvider serves a byte slice as a seekable Provider.
type MemoryProvider struct {
	data   []byte
	offset int64
	format Format
}

func NewMemoryProvider(data []byte, f Format) *MemoryProvider {
	return &MemoryProvider{data: data, format: f}
}

func (m *MemoryProvider) Format() Format { return m.format }

// Len is the total size of the data in bytes.
func (m *MemoryProvider) Len() int64 { return int64(len(m.data)) }

func (m *MemoryProvider) Read(p []byte) (int, error) {
	if m.offset >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.offset:])
	m.offset += int64(n)
	return n, nil
}

func (m *MemoryProvider) Seek(offset int64, whence int) (int64, error) {
	next, err := SeekTarget(offset, whence, m.offset, int64(len(m.data)))
	if err != nil {
		return 0, err
	}

	m.offset = next
	return next, nil
}
