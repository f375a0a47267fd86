// SPDX-License-Identifier: EPL-2.0

// Package layout loads loudspeaker layouts from YAML files.
//
// A layout file lists speaker positions with optional weights and the
// panning parameters the venue was tuned with:
//
//	rolloff: 2
//	blur: 0.3
//	speakers:
//	  - position: [0, 0]
//	  - position: [10, 0]
//	  - position: [10, 10]
//	    weight: 0.8
//	  - position: [0, 10]
//
// Positions carry 2 or 3 coordinates; every speaker in one file must use
// the same count. Omitted fields fall back to DefaultRolloff (2, the
// inverse-square law), DefaultBlur (0) and DefaultWeight (1).
//
// # Usage
//
//	l, err := layout.LoadFile("venue.yaml")
//	if err != nil {
//	    // bad file
//	}
//	speakers, err := l.Speakers2()
//	gains, err := panner.ComputeGains(speakers, source, l.Params())
//
// Speakers2 and Speakers3 fail when the file's dimensionality does not
// match, keeping the 2D/3D distinction explicit at the boundary where it
// enters the type system.
package layout
