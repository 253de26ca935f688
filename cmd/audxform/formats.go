// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/ik5/audxform/encode"
)

type FormatsCmd struct {
	Container string `arg:"" enum:"wav,aiff" help:"Output container: wav or aiff."`
	Rate      int    `short:"r" default:"44100" help:"Sample rate."`
	Channels  int    `short:"c" default:"2" help:"Channel count."`
}

func (c *FormatsCmd) Run(kctx *kong.Context) error {
	return c.print(kctx.Stdout)
}

func (c *FormatsCmd) print(w io.Writer) error {
	container, err := encode.ContainerFromPath("." + c.Container)
	if err != nil {
		return err
	}

	for _, f := range encode.OutputFormats(container, c.Rate, c.Channels) {
		fmt.Fprintf(w, "%-24s %8d bps\n", f, f.AverageBytesPerSecond()*8)
	}
	return nil
}
