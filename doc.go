// SPDX-License-Identifier: EPL-2.0

// Package dbap renders audio over arbitrary loudspeaker layouts using
// Distance-Based Amplitude Panning.
//
// DBAP computes one gain per loudspeaker from the distance between a
// virtual sound source and each speaker, normalized so the total output
// energy stays constant wherever the source sits. Unlike stereo or VBAP
// panning, it assumes nothing about speaker placement or listener
// position, which makes it a good fit for installations and irregular
// rigs.
//
// The gain math lives in the panner package, streaming stages (mono
// downmix, resampling, the Spatializer itself) in audio, file decoding
// in formats, and YAML layout files in layout. This root package ties
// them together for the common offline case:
//
//	speakers := []panner.Speaker[panner.Point2]{
//		panner.NewSpeaker(panner.Point2{X: -1, Y: 1}, 1),
//		panner.NewSpeaker(panner.Point2{X: 1, Y: 1}, 1),
//		panner.NewSpeaker(panner.Point2{X: -1, Y: -1}, 1),
//		panner.NewSpeaker(panner.Point2{X: 1, Y: -1}, 1),
//	}
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, err := dbap.RenderToPCM16(src, speakers,
//		panner.Point2{X: 0, Y: 0}, panner.Params{Rolloff: 2}, 48000)
//
// For moving sources or real-time use, drive audio.Spatializer directly
// and call MoveTo between reads.
package dbap
