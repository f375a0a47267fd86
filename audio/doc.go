// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives around the DBAP core.
//
// This package contains the audio processing building blocks:
//   - Source interface for audio input
//   - MonoMixer for folding material down to the point source DBAP pans
//   - Resampler for matching source material to the render rate
//   - Spatializer for rendering a source across a loudspeaker layout
//   - Registry for decoder registration by format key
//
// # Source Interface
//
// The Source interface is the foundation of every pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All decoders and processing stages implement it, so stages chain freely.
//
// # Spatializing
//
// The Spatializer is where the panner package meets the sample stream. It
// takes any Source (multi-channel input is downmixed to mono first), a
// speaker layout and panning parameters, and produces one output channel
// per speaker:
//
//	sp, err := audio.NewSpatializer(src, speakers, panner.Point2{X: 2, Y: 1},
//	    panner.Params{Rolloff: 2, Blur: 0.3})
//	buf := make([]float32, 4096*len(speakers))
//	n, err := sp.ReadSamples(buf) // interleaved, one channel per speaker
//
// Between reads, MoveTo repositions the virtual source:
//
//	sp.MoveTo(panner.Point2{X: 2.5, Y: 1})
//
// MoveTo and ReadSamples allocate nothing after construction, so a control
// loop can reposition the source on every tick. The spatializer applies new
// gains immediately; it does not crossfade between positions.
//
// # Sample Format
//
// Samples are interleaved float32 in [-1.0, 1.0]; 0.0 is silence. Counts
// returned by ReadSamples are in samples, not frames, and io.EOF signals a
// finished stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Resampling and Downmixing
//
// Resampler converts sample rates with cubic interpolation; MonoMixer
// averages channels. Both preserve the streaming shape:
//
//	res := audio.NewResampler(source, 48000)
//	mono := audio.NewMonoMixer(res)
//
// # Format Registry
//
// The registry maps format keys to decoders for applications that accept
// multiple input formats:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
package audio
