// SPDX-License-Identifier: EPL-2.0

package stream_test

import (
	"fmt"
	"io"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/stream"
)

func ExampleReader() {
	// half a second of 8 kHz stereo silence
	in := audio.NewPCMFormat(8000, 16, 2)
	src := audio.NewMemoryProvider(make([]byte, in.AverageBytesPerSecond()/2), in)

	r, err := stream.NewReader(src, audio.NewPCMFormat(8000, 16, 1), nil)
	if err != nil {
		panic(err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Format(), len(data))
	// Output: pcm 8000Hz 1ch 16bit 8000
}
