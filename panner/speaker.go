// SPDX-License-Identifier: EPL-2.0

package panner

// Speaker describes one loudspeaker: its fixed position in the same
// coordinate space as the virtual source, and a relative weight.
//
// Weight biases how much of the total energy the speaker receives at a given
// distance; 1 is neutral, larger values pull energy towards the speaker.
// A weight of 0 mutes the speaker. Negative weights are rejected by
// ComputeGains, not here — Speaker stays a plain data holder so layouts can
// live in static configuration tables.
//
// Speakers are values; the gain computation never mutates them.
type Speaker[P Position[P]] struct {
	Position P
	Weight   float64
}

// NewSpeaker returns a speaker at pos with the given weight.
func NewSpeaker[P Position[P]](pos P, weight float64) Speaker[P] {
	return Speaker[P]{Position: pos, Weight: weight}
}
