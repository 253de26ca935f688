// SPDX-License-Identifier: EPL-2.0

package encode_test

import (
	"fmt"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
)

func ExampleSelectFormat() {
	in := audio.NewPCMFormat(44100, 16, 2)

	fmt.Println(encode.Bitrates(encode.AIFF, in.SampleRate, in.Channels))

	out, err := encode.SelectFormat(encode.AIFF, in, 2_000_000)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// [705600 1411200 2116800 2822400]
	// pcm 44100Hz 2ch 24bit
}
