// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files. The
// provider always yields 16-bit little-endian stereo PCM at the file's
// sample rate, whatever the channel layout of the stream.
//
//	file, _ := os.Open("audio.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(src.Format()) // pcm 44100Hz 2ch 16bit
//
// The provider implements audio.Seeker when the input is an io.Seeker.
//
// # Tags
//
// ReadTags and ParseTags read the common ID3v2 text frames through
// github.com/bogem/id3v2:
//
//	tags, err := mp3.ReadTags("audio.mp3")
//	fmt.Println(tags.Artist, "-", tags.Title)
package mp3
