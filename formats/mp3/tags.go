// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bogem/id3v2"
)

// Tags is the ID3v2 metadata shown for a file.
type Tags struct {
	Title  string
	Artist string
	Album  string
	Year   string
	Genre  string
}

// IsEmpty reports whether no field is set.
func (t Tags) IsEmpty() bool { return t == Tags{} }

// ReadTags reads the ID3v2 tag of the file at path. A file without a tag
// yields empty Tags.
func ReadTags(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	return ParseTags(f)
}

// id3HeaderSize is the length of an ID3v2 tag header.
const id3HeaderSize = 10

// ParseTags reads an ID3v2 tag from the start of r. Input that does not
// start with an ID3v2 header, including input shorter than one, yields
// empty Tags.
func ParseTags(r io.Reader) (Tags, error) {
	header := make([]byte, id3HeaderSize)
	n, err := io.ReadFull(r, header)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || !bytes.HasPrefix(header[:n], []byte("ID3")) {
		return Tags{}, nil
	}
	if err != nil {
		return Tags{}, fmt.Errorf("tag read failed: %w", err)
	}

	tag, err := id3v2.ParseReader(io.MultiReader(bytes.NewReader(header), r), id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}, fmt.Errorf("tag parse failed: %w", err)
	}

	return tagsOf(tag), nil
}

func tagsOf(tag *id3v2.Tag) Tags {
	return Tags{
		Title:  tag.Title(),
		Artist: tag.Artist(),
		Album:  tag.Album(),
		Year:   tag.Year(),
		Genre:  tag.Genre(),
	}
}
