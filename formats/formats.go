// SPDX-License-Identifier: EPL-2.0

// Package formats wires every decoder of this module into one registry and
// picks a decoder for a file by extension or by its leading bytes.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/formats/aiff"
	"github.com/ik5/audxform/formats/flac"
	"github.com/ik5/audxform/formats/mp3"
	"github.com/ik5/audxform/formats/vorbis"
	"github.com/ik5/audxform/formats/wav"
)

var (
	ErrUnknownFormat = errors.New("unknown audio format")
	ErrNotSeekable   = errors.New("decoder does not support seeking")
)

// SniffLen is the number of leading bytes Sniff looks at.
const SniffLen = 12

// NewRegistry returns a registry holding every decoder under each of its
// file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// KeyFromPath is the lower-cased extension of path without the dot.
func KeyFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Sniff identifies a container from its first SniffLen bytes and returns its
// registry key.
func Sniff(header []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(header, []byte("ID3")):
		return "mp3", true
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// bare MPEG frame sync
		return "mp3", true
	case bytes.HasPrefix(header, []byte("fLaC")):
		return "flac", true
	case bytes.HasPrefix(header, []byte("OggS")):
		return "ogg", true
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return "wav", true
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return "aiff", true
	}
	return "", false
}

// File is a decoded audio file. Close releases the underlying file.
type File struct {
	audio.Provider
	Key  string
	file *os.File
}

func (f *File) Close() error { return f.file.Close() }

func (f *File) Seek(offset int64, whence int) (int64, error) {
	s, ok := f.Provider.(audio.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	return s.Seek(offset, whence)
}

// Len is the decoded size in bytes, or 0 when the decoder cannot tell.
func (f *File) Len() int64 {
	if l, ok := f.Provider.(audio.Lengther); ok {
		return l.Len()
	}
	return 0
}

// Open decodes path with the default registry.
func Open(path string) (*File, error) {
	return OpenWith(NewRegistry(), path)
}

// OpenWith decodes path with the decoder registered for its extension, or,
// when the extension is unknown, the one its leading bytes point to.
func OpenWith(r *audio.Registry, path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	key := KeyFromPath(path)
	dec, ok := r.Get(key)
	if !ok {
		key, dec, err = sniffFile(r, f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s as %s: %w", path, key, err)
	}

	return &File{Provider: src, Key: key, file: f}, nil
}

func sniffFile(r *audio.Registry, f *os.File) (string, audio.Decoder, error) {
	header := make([]byte, SniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", nil, err
	}

	key, ok := Sniff(header[:n])
	if !ok {
		return "", nil, fmt.Errorf("%w: magic % x", ErrUnknownFormat, header[:n])
	}

	dec, ok := r.Get(key)
	if !ok {
		return "", nil, fmt.Errorf("%w: no decoder for %s", ErrUnknownFormat, key)
	}
	return key, dec, nil
}
