// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into audio Sources.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which always emits
// 16-bit stereo PCM at the file's sample rate, so Channels() is always 2.
// Feed the result through audio.NewMonoMixer (or straight into the
// spatializer, which downmixes itself) for panning:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("source.mp3")
//	src, err := decoder.Decode(file)
package mp3
