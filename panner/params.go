// SPDX-License-Identifier: EPL-2.0

package panner

import "math"

// Params holds the tunable parameters of the panning computation.
type Params struct {
	// Rolloff is the exponent controlling how sharply gain falls off with
	// distance. 2 matches the inverse-square law of sound pressure in a free
	// field; closed rooms are usually panned with lower values, roughly in
	// [1, 3].
	Rolloff float64

	// Blur is a spread radius added to every source-to-speaker distance:
	// the effective distance is sqrt(d² + Blur²). A non-zero blur keeps the
	// gain finite and continuous as the source passes through a speaker
	// position, at the cost of the source gravitating less towards any
	// single speaker. Must be >= 0.
	Blur float64
}

// RolloffFromDecibels converts a rolloff given in decibels per doubling of
// distance — the convention used in the DBAP literature — into the exponent
// form Params.Rolloff expects.
//
// 6 dB per doubling is the free-field inverse distance law (exponent ~1);
// 12 dB corresponds to inverse-square (exponent ~2). Rooms with reflections
// and reverberation are typically panned with 3-5 dB.
func RolloffFromDecibels(db float64) float64 {
	// amplitude ratio per doubling: 2^a = 10^(db/20)
	return db / (20 * math.Log10(2))
}
