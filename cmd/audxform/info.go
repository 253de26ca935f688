// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/formats"
	"github.com/ik5/audxform/formats/mp3"
)

type InfoCmd struct {
	Path string `arg:"" type:"existingfile" help:"Audio file to inspect."`
}

func (c *InfoCmd) Run(kctx *kong.Context) error {
	return c.print(kctx.Stdout)
}

func (c *InfoCmd) print(w io.Writer) error {
	f, err := formats.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	format := f.Format()
	fmt.Fprintf(w, "container: %s\n", f.Key)
	fmt.Fprintf(w, "format:    %s\n", format)
	if n := f.Len(); n > 0 {
		fmt.Fprintf(w, "duration:  %v\n", audio.BytesToRefTime(int(n), format).Duration())
	}

	if f.Key != "mp3" {
		return nil
	}

	tags, err := mp3.ReadTags(c.Path)
	if err != nil || tags.IsEmpty() {
		return nil
	}
	for _, tag := range []struct{ name, value string }{
		{"title", tags.Title},
		{"artist", tags.Artist},
		{"album", tags.Album},
		{"year", tags.Year},
		{"genre", tags.Genre},
	} {
		if tag.value != "" {
			fmt.Fprintf(w, "%-10s %s\n", tag.name+":", tag.value)
		}
	}
	return nil
}
