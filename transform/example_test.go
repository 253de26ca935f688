// SPDX-License-Identifier: EPL-2.0

package transform_test

import (
	"fmt"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/transform"
)

func ExampleConverter() {
	in := audio.NewPCMFormat(8000, 16, 2)
	out := audio.NewPCMFormat(8000, 16, 1)

	c, err := transform.NewConverter(in, out)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	_ = c.ProcessMessage(transform.MessageBeginStreaming)
	_ = c.ProcessMessage(transform.MessageStartOfStream)

	// two stereo frames
	_ = c.ProcessInput(transform.Sample{Data: make([]byte, 8)})

	res, _ := c.ProcessOutput()
	fmt.Println(res.HasOutput, len(res.Data))

	res, _ = c.ProcessOutput()
	fmt.Println(res.HasOutput)
	// Output:
	// true 4
	// false
}
