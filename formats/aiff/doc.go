// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio Sources.
//
// Decoding is built on github.com/go-audio/aiff and supports 16-bit PCM
// with any channel count and sample rate:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("source.aiff")
//	src, err := decoder.Decode(file)
//
// go-audio needs seekable input; plain readers are buffered in memory.
package aiff
