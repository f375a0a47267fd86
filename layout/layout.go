// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/dbap/panner"
)

// Default panning parameters applied when a layout file omits them.
const (
	DefaultRolloff = 2.0
	DefaultBlur    = 0.0
	DefaultWeight  = 1.0
)

// Speaker is one loudspeaker entry in a layout file. Position holds 2 or 3
// coordinates; Weight defaults to 1 when omitted (use "weight: 0" explicitly
// to mute a speaker in the file).
type Speaker struct {
	Position []float64 `yaml:"position"`
	Weight   *float64  `yaml:"weight"`
}

// Layout is a parsed speaker-layout file:
//
//	rolloff: 2
//	blur: 0.3
//	speakers:
//	  - position: [0, 0]
//	  - position: [4, 0]
//	    weight: 0.8
//
// All speakers in one file must share the same dimensionality.
type Layout struct {
	Rolloff  *float64  `yaml:"rolloff"`
	Blur     *float64  `yaml:"blur"`
	Speakers []Speaker `yaml:"speakers"`
}

// Load parses a YAML layout from r.
func Load(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if len(l.Speakers) == 0 {
		return nil, ErrNoSpeakers
	}
	for i, s := range l.Speakers {
		if len(s.Position) != 2 && len(s.Position) != 3 {
			return nil, fmt.Errorf("speaker %d: %w", i, ErrBadPosition)
		}
		if len(s.Position) != len(l.Speakers[0].Position) {
			return nil, fmt.Errorf("speaker %d: %w", i, ErrMixedDimensions)
		}
	}
	return &l, nil
}

// LoadFile parses a YAML layout file from disk.
func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Dimensions returns 2 or 3, the dimensionality shared by every speaker.
func (l *Layout) Dimensions() int {
	return len(l.Speakers[0].Position)
}

// Params returns the panning parameters of the layout, with defaults filled
// in for omitted fields.
func (l *Layout) Params() panner.Params {
	p := panner.Params{Rolloff: DefaultRolloff, Blur: DefaultBlur}
	if l.Rolloff != nil {
		p.Rolloff = *l.Rolloff
	}
	if l.Blur != nil {
		p.Blur = *l.Blur
	}
	return p
}

// Speakers2 converts a 2D layout into panner speakers.
func (l *Layout) Speakers2() ([]panner.Speaker[panner.Point2], error) {
	if l.Dimensions() != 2 {
		return nil, ErrNot2D
	}
	out := make([]panner.Speaker[panner.Point2], len(l.Speakers))
	for i, s := range l.Speakers {
		out[i] = panner.NewSpeaker(panner.Point2{X: s.Position[0], Y: s.Position[1]}, weightOf(s))
	}
	return out, nil
}

// Speakers3 converts a 3D layout into panner speakers.
func (l *Layout) Speakers3() ([]panner.Speaker[panner.Point3], error) {
	if l.Dimensions() != 3 {
		return nil, ErrNot3D
	}
	out := make([]panner.Speaker[panner.Point3], len(l.Speakers))
	for i, s := range l.Speakers {
		out[i] = panner.NewSpeaker(panner.Point3{
			X: s.Position[0],
			Y: s.Position[1],
			Z: s.Position[2],
		}, weightOf(s))
	}
	return out, nil
}

func weightOf(s Speaker) float64 {
	if s.Weight == nil {
		return DefaultWeight
	}
	return *s.Weight
}
