// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "stereo", channels: 2, want: 0.05},
		{name: "quad", channels: 4, want: 0.15},
		{name: "7.1", channels: 8, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newMockSource(8000, tt.channels, 100, func(sample, channel int) float32 {
				return float32(channel) / 10
			})
			mixer := NewMonoMixer(src)

			buf := make([]float32, 10)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 10 {
				t.Fatalf("ReadSamples() n = %d, want 10", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 0.001 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 5)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("second ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("second ReadSamples() n = %d, want 0", n)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(8000, 2, 100))

	n, err := mixer.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples(nil) error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("ReadSamples(nil) n = %d, want 0", n)
	}
}

func TestMonoMixer_PreservesRate(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newSilentSource(44100, 2, 100))
	if mixer.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", mixer.SampleRate())
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := newSineSource(8000, 2, 100000, 440)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src.Reset()
		for {
			_, err := mixer.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

// BenchmarkMonoMixer_ZeroAllocs verifies steady-state reads do not allocate.
func BenchmarkMonoMixer_ZeroAllocs(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping allocation test in short mode")
	}

	src := newSineSource(8000, 2, 100000, 440)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 1024)

	mixer.ReadSamples(buf) // warm up the scratch buffer

	allocs := testing.AllocsPerRun(100, func() {
		src.Reset()
		_, _ = mixer.ReadSamples(buf)
	})
	if allocs > 0 {
		b.Errorf("ReadSamples() allocated %v times, want 0", allocs)
	}
}
