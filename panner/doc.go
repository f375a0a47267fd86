// SPDX-License-Identifier: EPL-2.0

// Package panner computes per-loudspeaker gains with Distance-Based
// Amplitude Panning (DBAP, Lossius 2009).
//
// DBAP places a virtual sound source among an arbitrary arrangement of
// loudspeakers — no circle, no grid, no sweet spot assumption — and derives
// one gain per speaker purely from the distances between the source and the
// speakers. Panning techniques like VBAP need speakers on a sphere around a
// listener; DBAP only needs their coordinates.
//
// # Model
//
// A layout is a slice of Speaker values, each a position plus a relative
// weight. Positions are plain value types (Point2 or Point3); because the
// speaker, source and gain computation are generic over the point type, a
// 2D source against a 3D layout does not compile.
//
// # Computing gains
//
//	speakers := []panner.Speaker[panner.Point2]{
//	    panner.NewSpeaker(panner.Point2{X: -1}, 1),
//	    panner.NewSpeaker(panner.Point2{X: 1}, 1),
//	}
//	params := panner.Params{Rolloff: 2, Blur: 0.1}
//
//	gains, err := panner.ComputeGains(speakers, panner.Point2{X: 0.5}, params)
//	if err != nil {
//	    // a speaker had a negative or NaN weight
//	}
//	for g := range gains.All() {
//	    // one gain per speaker, input order
//	}
//
// The gains are energy normalized: the sum of their squares is 1 whenever at
// least one speaker is audible, so total loudness does not depend on where
// the source is or how dense the array is.
//
// # Parameters
//
// Rolloff is the distance falloff exponent (2 = inverse-square law); Blur is
// a regularization radius that keeps gains finite and smooth as the source
// passes through a speaker position. Both are required, caller-supplied
// values — see Params. RolloffFromDecibels converts from the dB-per-doubling
// convention used in the DBAP paper.
//
// # Per-update usage
//
// Construct the speaker slice once at configuration time and call
// ComputeGains on every control update with the new source position. The
// computation is a single O(N) reduction followed by deferred per-element
// arithmetic; Gains.At and Gains.AppendTo allocate nothing, so recomputation
// is safe inside a real-time control tick. The package does not smooth
// between updates — crossfade successive gain vectors in the caller if the
// source moves in coarse steps.
package panner
