// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into audio Sources.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which conveniently
// produces interleaved float32 samples already in [-1.0, 1.0]:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("source.ogg")
//	src, err := decoder.Decode(file)
package vorbis
