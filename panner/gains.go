// SPDX-License-Identifier: EPL-2.0

package panner

import (
	"fmt"
	"iter"
	"math"
)

// Gains is the per-speaker gain sequence produced for one source position.
//
// It is a pure function of the inputs captured at ComputeGains time: the
// normalization constant is computed once, each gain is derived on demand,
// and iterating any number of times yields identical values in speaker
// order. Gains holds the speaker slice by read-only reference and never
// mutates it, so one speaker table can back many concurrent computations as
// long as nothing writes to it.
type Gains[P Position[P]] struct {
	speakers []Speaker[P]
	source   P
	params   Params
	invNorm  float64

	// onSource is set when the source sits exactly on one or more audible
	// speakers with zero blur. The general formula is singular there; the
	// gains collapse to the limit distribution instead (see At).
	onSource bool
}

// ComputeGains computes DBAP gains for a virtual source at source over the
// given speakers.
//
// For speaker i at effective distance d'_i = sqrt(d_i² + Blur²) the gain is
//
//	g_i = (w_i / d'_i^Rolloff) / sqrt(S)
//
// with S the sum of the squared numerators over the whole set, so that
// sum(g_i²) == 1 whenever any speaker is audible: the array delivers
// constant total energy no matter where the source sits or how many
// speakers surround it.
//
// The returned sequence mirrors the input order. An empty speaker slice
// yields an empty sequence. A set where every speaker is muted (weight 0)
// or infinitely far away yields all-zero gains; neither case is an error.
// A speaker with a negative or NaN weight makes the whole set invalid and
// is reported as ErrInvalidWeight with its index.
//
// The single reduction pass over speakers happens here; the returned Gains
// performs only fixed per-element arithmetic, allocating nothing.
func ComputeGains[P Position[P]](speakers []Speaker[P], source P, params Params) (Gains[P], error) {
	g := Gains[P]{speakers: speakers, source: source, params: params}

	var sumN2, sumW2 float64
	for i, s := range speakers {
		if s.Weight < 0 || math.IsNaN(s.Weight) {
			return Gains[P]{}, fmt.Errorf("speaker %d: %w", i, ErrInvalidWeight)
		}
		if s.Weight == 0 {
			continue
		}
		d := effectiveDistance(s.Position, source, params.Blur)
		if d == 0 && params.Rolloff > 0 {
			// Singular numerator: this speaker dominates every speaker at
			// non-zero distance. Normalize over the coincident ones only.
			g.onSource = true
			sumW2 += s.Weight * s.Weight
			continue
		}
		n := s.Weight / math.Pow(d, params.Rolloff)
		sumN2 += n * n
	}

	switch {
	case g.onSource:
		g.invNorm = 1 / math.Sqrt(sumW2)
	case sumN2 > 0:
		g.invNorm = 1 / math.Sqrt(sumN2)
	}

	return g, nil
}

// Len returns the number of gains, equal to the number of input speakers.
func (g Gains[P]) Len() int {
	return len(g.speakers)
}

// At returns the gain for speaker i, in [0, 1]. It performs a fixed amount
// of arithmetic and no allocation, so it is safe on a real-time audio path.
func (g Gains[P]) At(i int) float64 {
	s := g.speakers[i]
	if s.Weight == 0 || g.invNorm == 0 {
		return 0
	}
	d := effectiveDistance(s.Position, g.source, g.params.Blur)
	if g.onSource {
		// Limit as d -> 0: coincident speakers split the energy in
		// proportion to their weights, everyone else vanishes.
		if d == 0 {
			return s.Weight * g.invNorm
		}
		return 0
	}
	return s.Weight / math.Pow(d, g.params.Rolloff) * g.invNorm
}

// All returns the gains as a restartable sequence in speaker order. A caller
// that stops early (say, looking for the loudest contributor) only pays for
// the elements it consumed; the normalization pass already happened in
// ComputeGains.
func (g Gains[P]) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range g.speakers {
			if !yield(g.At(i)) {
				return
			}
		}
	}
}

// AppendTo appends every gain to dst and returns the extended slice. With
// pre-allocated capacity this is the zero-allocation way to materialize the
// sequence on a control tick.
func (g Gains[P]) AppendTo(dst []float64) []float64 {
	for i := range g.speakers {
		dst = append(dst, g.At(i))
	}
	return dst
}

// effectiveDistance is the blurred distance between speaker and source.
// With blur > 0 it is strictly positive even when the positions coincide.
func effectiveDistance[P Position[P]](speaker, source P, blur float64) float64 {
	d := speaker.Distance(source)
	if blur == 0 {
		return d
	}
	return math.Sqrt(d*d + blur*blur)
}
