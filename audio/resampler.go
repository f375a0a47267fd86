// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/dbap/utils"
)

// Resampler converts src to dstRate using Catmull-Rom cubic interpolation
// over a sliding four-frame window. The channel count is preserved. When
// downsampling, a one-pole low-pass smooths the input to tame aliasing.
//
// Rendering pipelines use it to bring source material to the device rate
// before spatializing.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames advanced per output frame
	channels int

	// window[1] and window[2] bracket the interpolation point; slots 0 and
	// 3 feed the cubic tangents. The first frame is duplicated into the
	// leading slot so output starts on it; when the source runs dry, the
	// last frame is duplicated once as interpolation support and the stream
	// ends right after it. loaded marks the slots output may still use.
	window [4][]float32
	loaded [4]bool
	primed bool
	held   bool    // the trailing duplicate has been placed
	pos    float64 // fraction in [0,1) between window[1] and window[2]
	eof    bool

	frame []float32

	lowpass  []float32
	filter   bool
	filterOn bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  make([]float32, channels),
		filter:   ratio > 1,
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads one source frame into dst, low-pass filtered when
// downsampling. It reports whether a full frame was loaded; a partial or
// missing frame ends the stream.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}
	if n < r.channels {
		return false, nil
	}

	if r.filter {
		if !r.filterOn {
			// Seed the filter with the first frame to avoid a warm-up dip.
			copy(r.lowpass, r.frame)
			r.filterOn = true
		}
		for c := range r.channels {
			r.lowpass[c] = 0.5*r.frame[c] + 0.5*r.lowpass[c]
			dst[c] = r.lowpass[c]
		}
	} else {
		copy(dst, r.frame)
	}
	return true, nil
}

// loadSlot reads the next source frame into window[i]. When the source has
// run dry the previous frame is duplicated there instead; only the first
// duplicate counts as loaded, so output stops after the real material.
func (r *Resampler) loadSlot(i int) error {
	ok, err := r.readFrame(r.window[i])
	if err != nil {
		return err
	}
	if ok {
		r.loaded[i] = true
		return nil
	}

	copy(r.window[i], r.window[i-1])
	r.loaded[i] = !r.held
	r.held = true
	return nil
}

// prime fills the window with the first source frames.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.loaded[0], r.loaded[1] = true, true

	for i := 2; i < 4; i++ {
		if err := r.loadSlot(i); err != nil {
			return err
		}
	}
	r.primed = true
	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.loaded[0], r.loaded[1], r.loaded[2] = r.loaded[1], r.loaded[2], r.loaded[3]

	return r.loadSlot(3)
}

// ReadSamples produces samples at the destination rate. dst length must be
// a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	for written < want {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.loaded[1] || !r.loaded[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
