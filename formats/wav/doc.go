// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and multichannel WAV encoding.
//
// Both directions are built on github.com/go-audio/wav. Decoding accepts
// 16-bit PCM files with any channel count and sample rate; encoding writes
// interleaved 16-bit PCM with any channel count, which is how a spatialized
// render — one channel per loudspeaker — leaves the system.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("source.wav")
//	src, err := decoder.Decode(file)
//
// The returned audio.Source yields float32 samples in [-1.0, 1.0]. Readers
// without seeking are buffered in memory first (go-audio walks the RIFF
// chunk layout).
//
// # Encoding
//
//	file, _ := os.Create("render.wav")
//	err := wav.WritePCM16(file, 48000, 8, samples) // 8 loudspeakers
//
// samples is interleaved: frame f's value for channel c sits at
// samples[f*channels+c], matching the spatializer's output ordering.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCMSupported / ErrOnlyPCM16bitSupported: unsupported encodings
//   - ErrInvalidChannelCount / ErrPartialFrame: malformed encode requests
package wav
