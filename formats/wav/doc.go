// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into an audio.Provider.
//
// Header parsing is done by github.com/go-audio/wav. The provider serves
// the data chunk as-is, so its format is the file's own: integer PCM at 8,
// 16, 24 or 32 bits, or IEEE float at 32 or 64 bits. Other encodings
// (ADPCM, A-law, extensible headers) are rejected with
// ErrUnsupportedWavFormat.
//
// Example:
//
//	f, _ := os.Open("audio.wav")
//	defer f.Close()
//
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(src.Format()) // pcm 44100Hz 2ch 16bit
//
// The provider implements audio.Seeker and audio.Lengther. Inputs that are
// not an io.ReadSeeker are read into memory first.
package wav
