// SPDX-License-Identifier: EPL-2.0

package layout

import (
	"errors"
	"strings"
	"testing"
)

const squareLayout = `
rolloff: 1.5
blur: 0.25
speakers:
  - position: [0, 0]
  - position: [10, 0]
  - position: [10, 10]
    weight: 0.8
  - position: [0, 10]
    weight: 0
`

func TestLoad_Square(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader(squareLayout))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if l.Dimensions() != 2 {
		t.Errorf("Dimensions() = %d, want 2", l.Dimensions())
	}

	p := l.Params()
	if p.Rolloff != 1.5 {
		t.Errorf("Rolloff = %v, want 1.5", p.Rolloff)
	}
	if p.Blur != 0.25 {
		t.Errorf("Blur = %v, want 0.25", p.Blur)
	}

	speakers, err := l.Speakers2()
	if err != nil {
		t.Fatalf("Speakers2() error = %v", err)
	}
	if len(speakers) != 4 {
		t.Fatalf("got %d speakers, want 4", len(speakers))
	}

	if speakers[1].Position.X != 10 || speakers[1].Position.Y != 0 {
		t.Errorf("speakers[1].Position = %+v, want {10 0}", speakers[1].Position)
	}
	if speakers[0].Weight != 1 {
		t.Errorf("omitted weight = %v, want default 1", speakers[0].Weight)
	}
	if speakers[2].Weight != 0.8 {
		t.Errorf("speakers[2].Weight = %v, want 0.8", speakers[2].Weight)
	}
	if speakers[3].Weight != 0 {
		t.Errorf("explicit zero weight = %v, want 0 (muted)", speakers[3].Weight)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader("speakers:\n  - position: [1, 2]\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	p := l.Params()
	if p.Rolloff != DefaultRolloff {
		t.Errorf("Rolloff = %v, want %v", p.Rolloff, DefaultRolloff)
	}
	if p.Blur != DefaultBlur {
		t.Errorf("Blur = %v, want %v", p.Blur, DefaultBlur)
	}
}

func TestLoad_3D(t *testing.T) {
	t.Parallel()

	l, err := Load(strings.NewReader(`
speakers:
  - position: [0, 0, 2]
  - position: [4, 0, 2]
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if l.Dimensions() != 3 {
		t.Errorf("Dimensions() = %d, want 3", l.Dimensions())
	}

	speakers, err := l.Speakers3()
	if err != nil {
		t.Fatalf("Speakers3() error = %v", err)
	}
	if speakers[1].Position.Z != 2 {
		t.Errorf("speakers[1].Position.Z = %v, want 2", speakers[1].Position.Z)
	}

	if _, err := l.Speakers2(); !errors.Is(err, ErrNot2D) {
		t.Errorf("Speakers2() on 3D layout error = %v, want ErrNot2D", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{name: "empty", yaml: "speakers: []\n", want: ErrNoSpeakers},
		{name: "one coordinate", yaml: "speakers:\n  - position: [1]\n", want: ErrBadPosition},
		{name: "four coordinates", yaml: "speakers:\n  - position: [1, 2, 3, 4]\n", want: ErrBadPosition},
		{
			name: "mixed dimensions",
			yaml: "speakers:\n  - position: [1, 2]\n  - position: [1, 2, 3]\n",
			want: ErrMixedDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(strings.NewReader(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := Load(strings.NewReader("speakers: [not a mapping")); err == nil {
		t.Error("Load() succeeded on malformed YAML")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile("does-not-exist.yaml"); err == nil {
		t.Error("LoadFile() succeeded on missing file")
	}
}
