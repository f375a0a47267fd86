// SPDX-License-Identifier: EPL-2.0

package dbap

import (
	"fmt"
	"io"

	"github.com/ik5/dbap/audio"
	"github.com/ik5/dbap/panner"
	"github.com/ik5/dbap/utils"
)

// RenderToPCM16 plays src from the fixed position at over the speaker
// layout and collects the whole render as interleaved 16-bit PCM at
// sampleRate, one channel per speaker in layout order. The source is
// resampled and folded to mono as needed.
//
// The entire stream is decoded into memory; for long material or moving
// sources use audio.Spatializer directly.
func RenderToPCM16[P panner.Position[P]](src audio.Source, speakers []panner.Speaker[P], at P, params panner.Params, sampleRate int) ([]int16, error) {
	var stage audio.Source = src
	if stage.SampleRate() != sampleRate {
		stage = audio.NewResampler(stage, sampleRate)
	}

	sp, err := audio.NewSpatializer(stage, speakers, at, params)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buf := make([]float32, 4096*len(speakers))
	var out []int16
	for {
		n, err := sp.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, utils.Float32ToInt16(v))
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("rendering: %w", err)
		}
	}
}
