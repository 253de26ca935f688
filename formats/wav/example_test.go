// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/encode"
	"github.com/ik5/audxform/formats/wav"
)

// Example_roundTrip writes a WAV file and decodes it again.
func Example_roundTrip() {
	format := audio.NewPCMFormat(16000, 16, 1)
	samples := []byte{0x10, 0x00, 0x20, 0x00, 0x30, 0x00}

	file := &encode.Buffer{}
	if err := encode.Encode(file, encode.WAV, audio.NewMemoryProvider(samples, format)); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	data, _ := io.ReadAll(src)
	fmt.Println(src.Format())
	fmt.Printf("% x\n", data)
	// Output:
	// pcm 16000Hz 1ch 16bit
	// 10 00 20 00 30 00
}
