// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/dbap/panner"
)

// Spatializer renders a source across a loudspeaker layout: one output
// channel per speaker, each carrying the input signal scaled by that
// speaker's DBAP gain. It implements Source, so it slots into a pipeline
// like any other stage.
//
// Multi-channel input is folded to mono first — the virtual source is a
// point. MoveTo repositions the source between reads; the caller decides
// when, typically once per control tick. Gain changes take effect on the
// next ReadSamples with no interpolation, so crossfade in the caller if the
// source jumps far.
type Spatializer[P panner.Position[P]] struct {
	src      Source
	speakers []panner.Speaker[P]
	params   panner.Params

	gains   []float32
	scratch []float64
	tmp     []float32
}

// NewSpatializer wraps src for rendering over speakers with the source
// starting at position at. The speaker slice is held by reference and must
// not be mutated while the spatializer is in use.
func NewSpatializer[P panner.Position[P]](src Source, speakers []panner.Speaker[P], at P, params panner.Params) (*Spatializer[P], error) {
	if len(speakers) == 0 {
		return nil, ErrNoSpeakers
	}
	if src.Channels() != 1 {
		src = NewMonoMixer(src)
	}

	s := &Spatializer[P]{
		src:      src,
		speakers: speakers,
		params:   params,
		gains:    make([]float32, len(speakers)),
		scratch:  make([]float64, 0, len(speakers)),
		tmp:      make([]float32, 4096),
	}
	if err := s.MoveTo(at); err != nil {
		return nil, err
	}
	return s, nil
}

// MoveTo recomputes the per-speaker gains for a new source position. It
// allocates nothing after construction, so it is safe to call from a
// real-time control loop.
func (s *Spatializer[P]) MoveTo(at P) error {
	g, err := panner.ComputeGains(s.speakers, at, s.params)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	s.scratch = g.AppendTo(s.scratch[:0])
	for i, v := range s.scratch {
		s.gains[i] = float32(v)
	}
	return nil
}

func (s *Spatializer[P]) SampleRate() int { return s.src.SampleRate() }

// Channels returns the number of output channels, one per speaker, in
// speaker order.
func (s *Spatializer[P]) Channels() int { return len(s.speakers) }

// Gain returns the current gain applied to speaker i.
func (s *Spatializer[P]) Gain(i int) float32 { return s.gains[i] }

func (s *Spatializer[P]) Close() error {
	if err := s.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with interleaved frames of len(speakers) channels.
// dst length must be a multiple of Channels().
func (s *Spatializer[P]) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := len(s.speakers)
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / channels
	if cap(s.tmp) < frames {
		s.tmp = make([]float32, frames)
	}

	n, err := s.src.ReadSamples(s.tmp[:frames])
	if n == 0 {
		return 0, err
	}

	for f := range n {
		v := s.tmp[f]
		base := f * channels
		for c, g := range s.gains {
			dst[base+c] = v * g
		}
	}

	return n * channels, err
}
